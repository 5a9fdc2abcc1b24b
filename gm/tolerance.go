// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gm implements the numeric and tolerance primitives, the
// Bernstein/B-spline basis, and the knot-vector arithmetic that the rest
// of the kernel (curve, surface, mesh) builds on.
package gm

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// F is the kernel's scalar type.
type F = float64

// Tolerance is the general near-equality tolerance used throughout the
// kernel: two scalars closer than Tolerance are considered equal.
const Tolerance F = 1.0e-7

// Tolerance2 is Tolerance squared, used when comparing squared distances.
const Tolerance2 F = Tolerance * Tolerance

// ulps is the smallest relative gap accepted before a denominator is
// treated as exactly zero by InvOrZero.
const ulps F = 1.0e-12

// Near reports whether x and y are within Tolerance of each other.
func Near(x, y F) bool {
	return math.Abs(x-y) <= Tolerance
}

// Near2 reports whether x and y are within Tolerance2 of each other;
// meant for comparing squared lengths/distances.
func Near2(x, y F) bool {
	return math.Abs(x-y) <= Tolerance2
}

// InvOrZero returns 1/x unless x is near zero, in which case it returns 0.
// This is the safe-reciprocal primitive used by the B-spline basis and
// knot-insertion recurrences, where a zero knot span must contribute zero
// rather than blow up.
func InvOrZero(x F) F {
	if math.Abs(x) <= ulps {
		return 0
	}
	return 1 / x
}

// UniformDivide subdivides [begin,end] into division+1 samples, inclusive
// of both endpoints. Reversing the range (begin > end) reverses the
// output. division must be >= 1.
func UniformDivide(begin, end F, division int) []F {
	return utl.LinSpace(begin, end, division+1)
}

// RangeAt maps ratio in [0,1] onto [start,end].
func RangeAt(start, end, ratio F) F {
	return start + (end-start)*ratio
}
