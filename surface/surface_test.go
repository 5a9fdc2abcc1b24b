// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"testing"

	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
)

func Test_surface_patch_grid01(tst *testing.T) {

	chk.PrintTitle("surface_patch_grid01")

	p := Plane{Origin: gm.NewVec3(0, 0, 0), Normal: gm.NewVec3(0, 0, 1), UAxis: gm.NewVec3(1, 0, 0), VAxis: gm.NewVec3(0, 1, 0)}
	patch := SurfacePatch{Surface: p, U0: 0, U1: 2, V0: 0, V1: 3, DivU: 4, DivV: 6}
	grid := patch.GetPoints()
	if grid.Rows() != 7 || grid.Cols() != 5 {
		tst.Fatalf("expected 7x5 grid, got %dx%d", grid.Rows(), grid.Cols())
	}
	corner := grid.At(grid.Rows()-1, grid.Cols()-1)
	chk.Vector(tst, "far corner", 1e-12, []F{corner.X, corner.Y, corner.Z}, []F{2, 3, 0})

	m := patch.GetTriangleMesh()
	if m.TriangleCount() != 2*4*6 {
		tst.Fatalf("expected %d triangles, got %d", 2*4*6, m.TriangleCount())
	}
}

func Test_edge_loop_to_polygon01(tst *testing.T) {

	chk.PrintTitle("edge_loop_to_polygon01")

	square := []gm.Point3{
		gm.NewVec3(0, 0, 0),
		gm.NewVec3(1, 0, 0),
		gm.NewVec3(1, 1, 0),
		gm.NewVec3(0, 1, 0),
		gm.NewVec3(0, 0, 0),
	}
	loop := EdgeLoop{Edges: []curve.Segment{
		{Curve: curve.NewPolyline(square), U0: 0, U1: 1, Division: 4},
	}}
	polygon := loop.ToPolygon()
	if len(polygon) != 4 {
		tst.Fatalf("expected closing duplicate dropped, got %d points", len(polygon))
	}
}

func Test_plane_trim01(tst *testing.T) {

	chk.PrintTitle("plane_trim01")

	p := Plane{Origin: gm.NewVec3(0, 0, 0), Normal: gm.NewVec3(0, 0, 1), UAxis: gm.NewVec3(1, 0, 0), VAxis: gm.NewVec3(0, 1, 0)}
	square := []gm.Point3{
		gm.NewVec3(0, 0, 0),
		gm.NewVec3(2, 0, 0),
		gm.NewVec3(2, 2, 0),
		gm.NewVec3(0, 2, 0),
		gm.NewVec3(0, 0, 0),
	}
	loop := EdgeLoop{Edges: []curve.Segment{
		{Curve: curve.NewPolyline(square), U0: 0, U1: 1, Division: 4},
	}}
	m := p.Trim([]EdgeLoop{loop})
	if m.TriangleCount() != 2 {
		tst.Fatalf("expected 2 triangles for a convex quad, got %d", m.TriangleCount())
	}
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a := m.Vertices[m.Triangles[i]]
		b := m.Vertices[m.Triangles[i+1]]
		c := m.Vertices[m.Triangles[i+2]]
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross.Z <= 0 {
			tst.Fatalf("expected counter-clockwise winding, got cross.Z=%v", cross.Z)
		}
	}
}

func Test_spin_surface01(tst *testing.T) {

	chk.PrintTitle("spin_surface01")

	section := curve.NewPolyline([]gm.Point3{gm.NewVec3(1, 0, 0), gm.NewVec3(2, 0, 1)})
	s := SpinSurface{Origin: gm.NewVec3(0, 0, 0), Axis: gm.NewVec3(0, 0, 1), Section: section}

	p0 := s.Point(0, 0)
	chk.Vector(tst, "angle=0", 1e-12, []F{p0.X, p0.Y, p0.Z}, []F{1, 0, 0})

	pHalf := s.Point(0.5, 3.141592653589793)
	mid := section.Point(0.5)
	chk.Scalar(tst, "radius preserved", 1e-9, pHalf.X*pHalf.X+pHalf.Y*pHalf.Y, mid.X*mid.X)
	chk.Scalar(tst, "height preserved", 1e-9, pHalf.Z, mid.Z)
}

func Test_sweep_surface01(tst *testing.T) {

	chk.PrintTitle("sweep_surface01")

	path := curve.NewPolyline([]gm.Point3{gm.NewVec3(0, 0, 0), gm.NewVec3(0, 0, 10)})
	section := curve.NewPolyline([]gm.Point3{gm.NewVec3(1, 0, 0), gm.NewVec3(0, 1, 0)})
	s := SweepSurface{Path: path, Section: section}

	p := s.Point(0.5, 0.25)
	want := path.Point(0.5).Add(section.Point(0.25))
	chk.Vector(tst, "path+section", 1e-12, []F{p.X, p.Y, p.Z}, []F{want.X, want.Y, want.Z})
}

func Test_umbrella_apex01(tst *testing.T) {

	chk.PrintTitle("umbrella_apex01")

	u := Umbrella{Radius: 1}
	apex := u.Point(0, 0)
	chk.Vector(tst, "apex at theta=0", 1e-12, []F{apex.X, apex.Y, apex.Z}, []F{0, 0, 2 / 3.141592653589793})
}
