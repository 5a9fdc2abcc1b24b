// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"testing"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
)

func Test_from_grid01(tst *testing.T) {

	chk.PrintTitle("from_grid01")

	rows, cols := 4, 5
	points := make([]gm.Point3, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points[r*cols+c] = gm.NewVec3(F(c), F(r), 0)
		}
	}
	grid := gm.GridFromSlice(points, cols)
	m := FromGrid(grid)

	if len(m.Triangles) != 6*(rows-1)*(cols-1) {
		tst.Fatalf("expected %d indices, got %d", 6*(rows-1)*(cols-1), len(m.Triangles))
	}
	for _, idx := range m.Triangles {
		if int(idx) >= rows*cols {
			tst.Fatalf("index %d out of range [0,%d)", idx, rows*cols)
		}
	}
}

func Test_fill_normal_gaps01(tst *testing.T) {

	chk.PrintTitle("fill_normal_gaps01")

	nan := math.NaN()
	normals := gm.GridFromSlice([]gm.Vec3{
		gm.NewVec3(0, 0, 1), gm.NewVec3(nan, nan, nan),
		gm.NewVec3(0, 0, 1), gm.NewVec3(0, 0, 1),
	}, 2)
	FillNormalGaps(normals)

	v := normals.At(0, 1)
	if v.X != 0 || v.Y != 0 || v.Z != 1 {
		tst.Fatalf("expected filled normal (0,0,1), got %v", v)
	}
}
