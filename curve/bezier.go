// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/goparam/gm"

// BezierCurve is a 3D Bézier curve of degree len(ControlPoints)-1.
type BezierCurve struct {
	DefaultRefine
	ControlPoints []gm.Point3
}

// Degree returns len(ControlPoints)-1.
func (b BezierCurve) Degree() int { return len(b.ControlPoints) - 1 }

// Point evaluates point(u) = Σ B_{i,n}(u)·P_i.
func (b BezierCurve) Point(u F) gm.Point3 {
	point := gm.Point3{}
	basis := gm.Bernstein(len(b.ControlPoints), u)
	for i, bi := range basis {
		point = point.Add(b.ControlPoints[i].Scale(bi))
	}
	return point
}

// Derivative returns the degree-(n-1) Bézier curve with control points
// n·(P_{i+1}-P_i).
func (b BezierCurve) Derivative() BezierCurve {
	n := F(b.Degree())
	points := make([]gm.Point3, len(b.ControlPoints)-1)
	for i := range points {
		points[i] = b.ControlPoints[i+1].Sub(b.ControlPoints[i]).Scale(n)
	}
	return BezierCurve{ControlPoints: points}
}

// Project finds the nearest parameter by delegating to Polyline for
// degree 1, otherwise sampling 4n+1 parameters and running Newton
// iteration clamped to [0,1] for up to 10 trials.
func (b BezierCurve) Project(point gm.Point3) (F, error) {
	if b.Degree() == 1 {
		return NewPolyline(b.ControlPoints).Project(point)
	}
	der1 := b.Derivative()
	der2 := der1.Derivative()
	parameters := gm.UniformDivide(0, 1, b.Degree()*4)
	return findNearestParameter(b, der1, der2, point, parameters, 0, 1, 10), nil
}

var _ Curve = BezierCurve{}

// BezierCurveR is a rational (4D homogeneous control point) Bézier
// curve; weights carry w>0 and the evaluated point is the perspective
// division of the accumulated 4D sum. Project is unimplemented, matching
// the original implementation, which leaves rational-curve projection
// undefined.
type BezierCurveR struct {
	DefaultRefine
	ControlPoints []gm.Point4
}

// Degree returns len(ControlPoints)-1.
func (b BezierCurveR) Degree() int { return len(b.ControlPoints) - 1 }

// Point evaluates the rational Bézier curve and perspective-divides by w.
func (b BezierCurveR) Point(u F) gm.Point3 {
	point := gm.Point4{}
	basis := gm.Bernstein(len(b.ControlPoints), u)
	for i, bi := range basis {
		point = point.Add(b.ControlPoints[i].Scale(bi))
	}
	return point.Truncate().Scale(1 / point.W)
}

// Project is unimplemented for rational curves.
func (b BezierCurveR) Project(point gm.Point3) (F, error) {
	return 0, ErrUnimplemented
}

var _ Curve = BezierCurveR{}
