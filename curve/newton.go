// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/goparam/gm"

// findNearestPoint returns the index of the point in points nearest p.
func findNearestPoint(points []gm.Point3, p gm.Point3) int {
	min := gm.F(-1)
	minIndex := 0
	for i, v := range points {
		d := p.DistanceSquared(v)
		if min < 0 || d < min {
			min = d
			minIndex = i
		}
	}
	return minIndex
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(a, b, p gm.Point3) F {
	ap := p.Sub(a)
	ab := b.Sub(a)
	product := ap.Dot(ab)
	if product <= 0 {
		return ap.Length()
	}
	if product >= ab.LengthSquared() {
		return p.Sub(b).Length()
	}
	return ap.Cross(ab).Length() / ab.Length()
}

// findNearestParameter runs the shared Newton minimization used by
// Bézier and B-spline curve Project: seed u from the sampled point
// nearest p, then iterate u -= f/f' with
//
//	f(u)  = C'(u)·(C(u)-p)
//	f'(u) = C''(u)·(C(u)-p) + |C'(u)|²
//
// stopping early when the squared residual or f is within tolerance, and
// returning the last iterate (even unconverged) after trials attempts.
func findNearestParameter(c, der1, der2 Curve, p gm.Point3, parameters []F, lo, hi F, trials int) F {
	sampled := make([]gm.Point3, len(parameters))
	for i, u := range parameters {
		sampled[i] = c.Point(u)
	}
	u := parameters[findNearestPoint(sampled, p)]

	for i := 0; i < trials; i++ {
		delta := c.Point(u).Sub(p)
		if gm.Near2(delta.LengthSquared(), 0) {
			return u
		}
		tangent := der1.Point(u)
		f := tangent.Dot(delta)
		if gm.Near(f, 0) {
			return u
		}
		fPrime := der2.Point(u).Dot(delta) + tangent.LengthSquared()
		u -= f / fPrime
		if u < lo {
			u = lo
		} else if u > hi {
			u = hi
		}
	}
	return u
}
