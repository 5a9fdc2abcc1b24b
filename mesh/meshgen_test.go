// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
)

func Test_generate_triangular_mesh01(tst *testing.T) {

	chk.PrintTitle("generate_triangular_mesh01")

	points := []gm.Vec2{
		gm.NewVec2(0, 0.2),
		gm.NewVec2(-0.5, 0),
		gm.NewVec2(0, 0),
		gm.NewVec2(1, 0),
		gm.NewVec2(2, 0),
		gm.NewVec2(2, 1),
		gm.NewVec2(1, 1),
		gm.NewVec2(0, 1),
		gm.NewVec2(-0.5, 1),
		gm.NewVec2(0, 0.8),
	}
	boundaryCount := len(points)
	vertices, triangles := GenerateTriangularMesh(points, []int{0, len(points)})

	if len(vertices) <= boundaryCount {
		tst.Fatalf("expected at least one Steiner point, vertices grew from %d to %d", boundaryCount, len(vertices))
	}
	for i := 0; i < boundaryCount; i++ {
		chk.Vector(tst, "boundary vertex preserved", 1e-15,
			[]F{vertices[i].X, vertices[i].Y}, []F{points[i].X, points[i].Y})
	}
	if len(triangles)%3 != 0 {
		tst.Fatalf("triangle index count must be a multiple of 3, got %d", len(triangles))
	}
	for _, idx := range triangles {
		if int(idx) >= len(vertices) {
			tst.Fatalf("index %d out of range (len vertices = %d)", idx, len(vertices))
		}
	}
}
