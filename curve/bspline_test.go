// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

func cubicTestBspline() BSplineCurve {
	return BSplineCurve{
		Degree: 3,
		Knots:  gm.NewKnotVector([]F{0, 0, 0, 0, 0.5, 1, 1, 1, 1}),
		ControlPoints: []gm.Point3{
			gm.NewVec3(0, 0, 0),
			gm.NewVec3(1, 2, 0),
			gm.NewVec3(2, 3, 1),
			gm.NewVec3(3, 1, 2),
			gm.NewVec3(4, 0, 0),
		},
	}
}

func Test_bspline_endpoints01(tst *testing.T) {

	chk.PrintTitle("bspline_endpoints01")

	b := cubicTestBspline()
	lo, hi := b.Knots.Range()

	p0 := b.Point(lo)
	first := b.ControlPoints[0]
	chk.Vector(tst, "point(lo)", 1e-13, []F{p0.X, p0.Y, p0.Z}, []F{first.X, first.Y, first.Z})

	p1 := b.Point(hi)
	last := b.ControlPoints[len(b.ControlPoints)-1]
	chk.Vector(tst, "point(hi)", 1e-13, []F{p1.X, p1.Y, p1.Z}, []F{last.X, last.Y, last.Z})
}

func Test_bspline_add_knot_preserves_curve01(tst *testing.T) {

	chk.PrintTitle("bspline_add_knot_preserves_curve01")

	b := cubicTestBspline()
	lo, hi := b.Knots.Range()
	samples := gm.UniformDivide(lo, hi, 10)

	before := make([]gm.Point3, len(samples))
	for i, u := range samples {
		before[i] = b.Point(u)
	}

	b.AddKnot(0.25)
	b.AddKnot(0.75)

	for i, u := range samples {
		after := b.Point(u)
		if after.DistanceSquared(before[i]) > 1e-18 {
			tst.Fatalf("curve changed after knot insertion at u=%v: before=%v after=%v", u, before[i], after)
		}
	}
}

func Test_bspline_to_piecewise_bezier01(tst *testing.T) {

	chk.PrintTitle("bspline_to_piecewise_bezier01")

	b := cubicTestBspline()
	lo, hi := b.Knots.Range()
	pieces := b.ToPiecewiseBezier()
	if len(pieces) != 2 {
		tst.Fatalf("expected 2 pieces for one interior knot, got %d", len(pieces))
	}

	samples := gm.UniformDivide(lo, hi, 20)
	for _, u := range samples {
		want := b.Point(u)
		var got gm.Point3
		if u <= 0.5 {
			t := (u - lo) / (0.5 - lo)
			got = pieces[0].Point(t)
		} else {
			t := (u - 0.5) / (hi - 0.5)
			got = pieces[1].Point(t)
		}
		if got.DistanceSquared(want) > 1e-10 {
			tst.Fatalf("piecewise bezier mismatch at u=%v: want=%v got=%v", u, want, got)
		}
	}
}

func Test_bspline_derivative01(tst *testing.T) {

	chk.PrintTitle("bspline_derivative01")

	b := cubicTestBspline()
	der := b.Derivative()
	lo, hi := b.Knots.Range()

	for _, u := range []F{lo + 1e-3, 0.2, 0.5, 0.8, hi - 1e-3} {
		for axis := 0; axis < 3; axis++ {
			f := func(x F) F {
				p := b.Point(x)
				switch axis {
				case 0:
					return p.X
				case 1:
					return p.Y
				default:
					return p.Z
				}
			}
			numerical := num.DerivCentral(f, u, 1e-4)
			p := der.Point(u)
			var analytic F
			switch axis {
			case 0:
				analytic = p.X
			case 1:
				analytic = p.Y
			default:
				analytic = p.Z
			}
			chk.Scalar(tst, "bspline derivative", 1e-3, numerical, analytic)
		}
	}
}

func Test_bspline_project01(tst *testing.T) {

	chk.PrintTitle("bspline_project01")

	b := cubicTestBspline()
	target := b.Point(0.63)
	u, err := b.Project(target)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	got := b.Point(u)
	if got.DistanceSquared(target) > 1e-8 {
		tst.Fatalf("projection did not converge: got %v want %v", got, target)
	}
}

func Test_bspline_rational_unimplemented01(tst *testing.T) {

	chk.PrintTitle("bspline_rational_unimplemented01")

	b := BSplineCurveR{
		Degree: 2,
		Knots:  gm.NewKnotVector([]F{0, 0, 0, 1, 1, 1}),
		ControlPoints: []gm.Point4{
			gm.NewVec4(0, 0, 0, 1),
			gm.NewVec4(1, 1, 0, 1),
			gm.NewVec4(2, 0, 0, 1),
		},
	}
	_, err := b.Project(gm.NewVec3(0, 0, 0))
	if err != ErrUnimplemented {
		tst.Fatalf("expected ErrUnimplemented, got %v", err)
	}
}
