// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
)

func Test_polyline_length01(tst *testing.T) {

	chk.PrintTitle("polyline_length01")

	p := NewPolyline([]gm.Point3{
		gm.NewVec3(0, 0, 0),
		gm.NewVec3(3, 0, 0),
		gm.NewVec3(3, 4, 0),
	})
	chk.Scalar(tst, "length", 1e-15, p.Length(), 7.0)

	mid := p.Point(0.5)
	chk.Vector(tst, "midpoint", 1e-15, []F{mid.X, mid.Y, mid.Z}, []F{3, 0.5, 0})
}

func Test_polyline_project01(tst *testing.T) {

	chk.PrintTitle("polyline_project01")

	p := NewPolyline([]gm.Point3{
		gm.NewVec3(0, 0, 0),
		gm.NewVec3(10, 0, 0),
	})
	ratio, err := p.Project(gm.NewVec3(3, 5, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "ratio", 1e-15, ratio, 0.3)
}

func Test_polyline_nearest_vertex01(tst *testing.T) {

	chk.PrintTitle("polyline_nearest_vertex01")

	p := NewPolyline([]gm.Point3{
		gm.NewVec3(0, 0, 0),
		gm.NewVec3(10, 0, 0),
		gm.NewVec3(10, 10, 0),
	})
	index := p.NearestVertex(gm.NewVec3(9, 9, 0))
	if index != 2 {
		tst.Fatalf("expected nearest vertex 2, got %d", index)
	}
}
