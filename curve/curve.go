// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements the parametric-curve contract and its
// variants: Line, Circle, Polyline, Bézier (3D and rational 4D), and
// B-spline (3D and rational 4D).
package curve

import (
	"errors"

	"github.com/cpmech/goparam/gm"
)

// F is the kernel's scalar type.
type F = gm.F

// ErrUnimplemented is returned by operations the original implementation
// leaves undefined on a given variant — currently Project on the
// rational (4D control point) Bézier/B-spline curves.
var ErrUnimplemented = errors.New("curve: operation not implemented for this variant")

// Curve is the contract every curve variant satisfies.
type Curve interface {
	// Point evaluates the curve at parameter u.
	Point(u F) gm.Point3
	// Project returns the parameter of the point on the curve nearest to
	// p. It returns ErrUnimplemented for variants (rational curves) whose
	// projection is not defined.
	Project(p gm.Point3) (F, error)
	// RefineParameterRange adjusts (u0,u1) so that sampling it in
	// increasing order matches the edge's sense relative to the curve's
	// own parametric direction.
	RefineParameterRange(u0, u1 F, sameSense bool) (F, F)
}

// DefaultRefine provides the identity RefineParameterRange used by every
// curve variant except Circle.
type DefaultRefine struct{}

// RefineParameterRange returns (u0,u1) unchanged.
func (DefaultRefine) RefineParameterRange(u0, u1 F, sameSense bool) (F, F) {
	return u0, u1
}

// Segment is a curve together with a parameter range and a sampling
// count. Sampling yields division+1 points uniformly spaced in parameter.
type Segment struct {
	Curve     Curve
	U0, U1    F
	Division  int
}

// GetPoints samples the segment at Division+1 uniformly spaced parameters.
func (s Segment) GetPoints() []gm.Point3 {
	params := gm.UniformDivide(s.U0, s.U1, s.Division)
	points := make([]gm.Point3, len(params))
	for i, u := range params {
		points[i] = s.Curve.Point(u)
	}
	return points
}

// Polycurve is an ordered sequence of curve segments forming a continuous
// (possibly piecewise-heterogeneous) curve.
type Polycurve struct {
	Segments []Segment
}
