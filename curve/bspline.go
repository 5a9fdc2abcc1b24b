// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/goparam/gm"

// BSplineCurve is a 3D B-spline curve of the given degree. Unlike the
// other curve variants, a BSplineCurve supports in-place knot insertion,
// splitting, and clamping — it is the one mutable geometric value in the
// kernel.
type BSplineCurve struct {
	DefaultRefine
	ControlPoints []gm.Point3
	Knots         gm.KnotVector
	Degree        int
}

// Point evaluates point(u) = Σ N_{i,p}(u)·P_i.
func (b BSplineCurve) Point(u F) gm.Point3 {
	point := gm.Point3{}
	basis := b.Knots.BsplineBasis(b.Degree, u)
	for i, bi := range basis {
		point = point.Add(b.ControlPoints[i].Scale(bi))
	}
	return point
}

// Derivative returns the degree-(p-1) B-spline curve whose knots are
// Knots.Shrink() and whose control points are
// p·(P_{i+1}-P_i)/span_i, with span_i = U_{i+p+1}-U_{i+1} and divisions
// by zero yielding zero.
func (b BSplineCurve) Derivative() BSplineCurve {
	p := F(b.Degree)
	knots := b.Knots.Shrink()
	spans := knots.Spans(b.Degree)
	points := make([]gm.Point3, len(b.ControlPoints)-1)
	for i := range points {
		points[i] = b.ControlPoints[i+1].Sub(b.ControlPoints[i]).Scale(p * gm.InvOrZero(spans[i]))
	}
	return BSplineCurve{ControlPoints: points, Knots: knots, Degree: b.Degree - 1}
}

// Project finds the nearest parameter: degree 1 delegates to the control
// polyline and maps the arc-length fraction into Knots.Range(); otherwise
// Newton iterates from 4*len(ControlPoints) initial samples over
// Knots.Range(), clamped each step, for up to 10 trials.
func (b BSplineCurve) Project(point gm.Point3) (F, error) {
	if b.Degree == 1 {
		ratio, err := NewPolyline(b.ControlPoints).Project(point)
		if err != nil {
			return 0, err
		}
		lo, hi := b.Knots.Range()
		return gm.RangeAt(lo, hi, ratio), nil
	}
	der1 := b.Derivative()
	der2 := der1.Derivative()
	lo, hi := b.Knots.Range()
	parameters := gm.UniformDivide(lo, hi, len(b.ControlPoints)*4)
	return findNearestParameter(b, der1, der2, point, parameters, lo, hi, 10), nil
}

var _ Curve = BSplineCurve{}

// AddKnot inserts knot into Knots and recomputes the affected control
// points in place.
func (b *BSplineCurve) AddKnot(knot F) {
	p := b.Degree
	n := len(b.ControlPoints)

	index := b.Knots.AddKnot(knot)
	if index == 0 {
		b.ControlPoints = append([]gm.Point3{{}}, b.ControlPoints...)
		return
	}

	start := 0
	if index > p {
		start = index - p
	}
	end := index
	if index > n {
		b.ControlPoints = append(b.ControlPoints, gm.Point3{})
		end = n + 1
	} else {
		cp := make([]gm.Point3, len(b.ControlPoints)+1)
		copy(cp, b.ControlPoints[:index-1])
		cp[index-1] = b.ControlPoints[index-1]
		copy(cp[index:], b.ControlPoints[index-1:])
		b.ControlPoints = cp
	}

	for i := end - 1; i >= start; i-- {
		delta := b.Knots.At(i+p+1) - b.Knots.At(i)
		a := (knot - b.Knots.At(i)) * gm.InvOrZero(delta)
		b.ControlPoints[i] = b.ControlPoints[i-1].Scale(1 - a).Add(b.ControlPoints[i].Scale(a))
	}
}

// Split raises the multiplicity of t to Degree+1 by repeated AddKnot, then
// partitions knots and control points at the resulting span into two
// clamped B-splines sharing the seam: the receiver becomes the first
// piece, the second piece is returned.
func (b *BSplineCurve) Split(t F) BSplineCurve {
	p := b.Degree
	index := b.Knots.SpanIndex(t)
	s := 0
	if gm.Near(t, b.Knots.At(index)) {
		t = b.Knots.At(index)
		s = b.Knots.Multiplicity(index)
	}

	for i := s; i <= p; i++ {
		b.AddKnot(t)
	}

	k := b.Knots.SpanIndex(t)
	m := b.Knots.Len()
	n := len(b.ControlPoints)
	knots0 := b.Knots.SubVec(0, k+1)
	knots1 := b.Knots.SubVec(k-p, m)
	points0 := append([]gm.Point3(nil), b.ControlPoints[:k-p]...)
	points1 := append([]gm.Point3(nil), b.ControlPoints[k-p:n]...)

	second := BSplineCurve{Knots: knots1, ControlPoints: points1, Degree: p}
	b.Knots = knots0
	b.ControlPoints = points0
	return second
}

// Clamp raises the multiplicity of the first and last knots to Degree+1.
func (b *BSplineCurve) Clamp() {
	degree := b.Degree

	s := b.Knots.Multiplicity(0)
	first := b.Knots.At(0)
	for i := s; i <= degree; i++ {
		b.AddKnot(first)
	}

	n := b.Knots.Len()
	s = b.Knots.Multiplicity(n - 1)
	last := b.Knots.At(n - 1)
	for i := s; i <= degree; i++ {
		b.AddKnot(last)
	}
}

// ToPiecewiseBezier clamps a copy of the curve, then repeatedly splits it
// at each distinct interior knot, returning the Bézier control points of
// each resulting span in parameter order.
func (b BSplineCurve) ToPiecewiseBezier() []BezierCurve {
	bspline := b
	bspline.ControlPoints = append([]gm.Point3(nil), b.ControlPoints...)
	bspline.Knots = b.Knots.SubVec(0, b.Knots.Len())
	bspline.Clamp()

	knots := dedupNear(bspline.Knots.Slice())
	n := len(knots)

	result := make([]BezierCurve, 0, n-1)
	for i := 2; i < n; i++ {
		piece := bspline.Split(knots[n-i])
		result = append(result, BezierCurve{ControlPoints: piece.ControlPoints})
	}
	result = append(result, BezierCurve{ControlPoints: bspline.ControlPoints})

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

func dedupNear(values []F) []F {
	if len(values) == 0 {
		return values
	}
	out := values[:1]
	for _, v := range values[1:] {
		if !gm.Near(v, out[len(out)-1]) {
			out = append(out, v)
		}
	}
	return out
}

// BSplineCurveR is a rational (4D homogeneous control point) B-spline
// curve. Project is unimplemented, matching the original implementation.
type BSplineCurveR struct {
	DefaultRefine
	ControlPoints []gm.Point4
	Knots         gm.KnotVector
	Degree        int
}

// Point evaluates the rational B-spline curve and perspective-divides by w.
func (b BSplineCurveR) Point(u F) gm.Point3 {
	point := gm.Point4{}
	basis := b.Knots.BsplineBasis(b.Degree, u)
	for i, bi := range basis {
		point = point.Add(b.ControlPoints[i].Scale(bi))
	}
	return point.Truncate().Scale(1 / point.W)
}

// Project is unimplemented for rational curves.
func (b BSplineCurveR) Project(point gm.Point3) (F, error) {
	return 0, ErrUnimplemented
}

var _ Curve = BSplineCurveR{}
