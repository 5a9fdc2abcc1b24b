// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/goparam/gm"

// F is the kernel's scalar type.
type F = gm.F

// TriangleMesh is the value exchanged with the I/O layer: vertices,
// optional per-vertex normals (empty, or the same length as vertices),
// and a flat triangle index list whose length is always a multiple of 3.
type TriangleMesh struct {
	Vertices  []gm.Point3
	Normals   []gm.Vec3
	Triangles []uint32
}

// NewTriangleMesh returns an empty mesh, the value a surface's default
// Trim implementation returns when it has no bounds-aware triangulation.
func NewTriangleMesh() TriangleMesh {
	return TriangleMesh{}
}

// TriangleCount returns len(Triangles)/3.
func (m TriangleMesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// FromGrid stitches a (rows x cols) sample grid into 2*(rows-1)*(cols-1)
// triangles: for each quad at (r,c), emits (r*C+c, (r+1)*C+c, r*C+c+1) and
// (r*C+c+1, (r+1)*C+c, (r+1)*C+c+1).
func FromGrid(grid *gm.Grid[gm.Point3]) TriangleMesh {
	rows, cols := grid.Rows(), grid.Cols()
	triangles := make([]uint32, 0, (rows-1)*(cols-1)*6)
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			a := uint32(r*cols + c)
			b := uint32((r+1)*cols + c)
			d := uint32(r*cols + c + 1)
			e := uint32((r+1)*cols + c + 1)
			triangles = append(triangles, a, b, d)
			triangles = append(triangles, d, b, e)
		}
	}
	return TriangleMesh{Vertices: grid.Data(), Triangles: triangles}
}

// FillNormalGaps replaces any NaN normal entry in a (rows x cols) grid of
// normals with one borrowed from the nearest non-NaN 4-neighbor.
func FillNormalGaps(normals *gm.Grid[gm.Vec3]) {
	rows, cols := normals.Rows(), normals.Cols()
	isNaN := func(v gm.Vec3) bool { return v.X != v.X || v.Y != v.Y || v.Z != v.Z }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := normals.At(r, c)
			if !isNaN(v) {
				continue
			}
			type offset struct{ dr, dc int }
			for _, o := range []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nr, nc := r+o.dr, c+o.dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				candidate := normals.At(nr, nc)
				if !isNaN(candidate) {
					normals.Set(r, c, candidate)
					break
				}
			}
		}
	}
}
