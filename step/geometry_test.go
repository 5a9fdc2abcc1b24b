// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goparam/gm"
)

func Test_curve_entity_line01(tst *testing.T) {

	chk.PrintTitle("curve_entity_line01")

	source := `DATA;
#1=CARTESIAN_POINT('',(1.,2.,3.));
#2=DIRECTION('',(1.,0.,0.));
#3=VECTOR('',#2,5.);
#4=LINE('',#1,#3);
ENDSEC;
`
	doc := parseDocument(source)
	c := doc.curveEntity(4)

	p0 := c.Point(0)
	if !gm.Near(p0.X, 1) || !gm.Near(p0.Y, 2) || !gm.Near(p0.Z, 3) {
		tst.Fatalf("unexpected point at u=0: %v", p0)
	}
	p1 := c.Point(1)
	if !gm.Near(p1.X, 6) || !gm.Near(p1.Y, 2) || !gm.Near(p1.Z, 3) {
		tst.Fatalf("unexpected point at u=1: %v", p1)
	}
}

func Test_curve_entity_circle01(tst *testing.T) {

	chk.PrintTitle("curve_entity_circle01")

	source := `DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(0.,0.,1.));
#3=DIRECTION('',(1.,0.,0.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=CIRCLE('',#4,2.);
ENDSEC;
`
	doc := parseDocument(source)
	c := doc.curveEntity(5)

	p0 := c.Point(0)
	if !gm.Near(p0.X, 2) || !gm.Near(p0.Y, 0) {
		tst.Fatalf("unexpected point at angle=0: %v", p0)
	}
	p1 := c.Point(math.Pi / 2)
	if !gm.Near(p1.X, 0) || !gm.Near(p1.Y, 2) {
		tst.Fatalf("unexpected point at angle=pi/2: %v", p1)
	}
}

func Test_surface_entity_plane01(tst *testing.T) {

	chk.PrintTitle("surface_entity_plane01")

	source := `DATA;
#1=CARTESIAN_POINT('',(0.,0.,5.));
#2=DIRECTION('',(0.,0.,1.));
#3=DIRECTION('',(1.,0.,0.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=PLANE('',#4);
ENDSEC;
`
	doc := parseDocument(source)
	s := doc.surfaceEntity(5)

	p := s.Point(3, 4)
	if !gm.Near(p.X, 3) || !gm.Near(p.Y, 4) || !gm.Near(p.Z, 5) {
		tst.Fatalf("unexpected point: %v", p)
	}
}

func Test_surface_entity_cylindrical01(tst *testing.T) {

	chk.PrintTitle("surface_entity_cylindrical01")

	source := `DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(0.,0.,1.));
#3=DIRECTION('',(1.,0.,0.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=CYLINDRICAL_SURFACE('',#4,3.);
ENDSEC;
`
	doc := parseDocument(source)
	s := doc.surfaceEntity(5)

	p := s.Point(0, 0)
	if !gm.Near(p.X, 3) || !gm.Near(p.Y, 0) || !gm.Near(p.Z, 0) {
		tst.Fatalf("unexpected point: %v", p)
	}
}

func Test_curve_entity_bspline_with_knots01(tst *testing.T) {

	chk.PrintTitle("curve_entity_bspline_with_knots01")

	source := `DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=CARTESIAN_POINT('',(1.,2.,0.));
#3=CARTESIAN_POINT('',(2.,-2.,0.));
#4=CARTESIAN_POINT('',(3.,0.,0.));
#5=B_SPLINE_CURVE_WITH_KNOTS('',3,(#1,#2,#3,#4),.UNSPECIFIED.,.F.,.F.,(4,4),(0.,1.),.UNSPECIFIED.);
ENDSEC;
`
	doc := parseDocument(source)
	c := doc.curveEntity(5)

	p0 := c.Point(0)
	if !gm.Near(p0.X, 0) || !gm.Near(p0.Y, 0) {
		tst.Fatalf("unexpected start point: %v", p0)
	}
	p1 := c.Point(1)
	if !gm.Near(p1.X, 3) || !gm.Near(p1.Y, 0) {
		tst.Fatalf("unexpected end point: %v", p1)
	}
}
