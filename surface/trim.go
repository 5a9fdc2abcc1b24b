// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/mesh"
)

// polygonizeBounds concatenates the 3D polygon of every bound and returns
// it together with the boundary offsets [0, e1, e2, ...] consumed by the
// mesh package's triangulation entry points.
func polygonizeBounds(bounds []EdgeLoop) (points3D []gm.Point3, boundaries []int) {
	boundaries = append(boundaries, 0)
	for _, loop := range bounds {
		points3D = append(points3D, loop.ToPolygon()...)
		boundaries = append(boundaries, len(points3D))
	}
	return
}

func reverseBoundary(points2D []gm.Vec2, points3D []gm.Point3, boundaries []int) ([]gm.Vec2, []gm.Point3) {
	out2D := append([]gm.Vec2(nil), points2D...)
	out3D := append([]gm.Point3(nil), points3D...)
	for w := 0; w+1 < len(boundaries); w++ {
		lo, hi := boundaries[w], boundaries[w+1]
		for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
			out2D[i], out2D[j] = out2D[j], out2D[i]
			out3D[i], out3D[j] = out3D[j], out3D[i]
		}
	}
	return out2D, out3D
}

// trimWithProjector is the engine behind Plane.Trim (Cylinder.Trim and
// BSplineSurface.Trim call its core, trimPolygonized, directly): it
// polygonizes the bounds, projects the 3D boundary into 2D via
// project, orients it so the outer loop is counter-clockwise (reversing
// triangle winding to compensate when it wasn't), triangulates via either
// ear-clipping or the advancing front, and lifts any newly introduced
// Steiner vertices back to 3D via lift.
func trimWithProjector(bounds []EdgeLoop, project func(gm.Point3) gm.Vec2, lift func(gm.Vec2) gm.Point3, advancingFront bool) mesh.TriangleMesh {
	if len(bounds) == 0 {
		return mesh.NewTriangleMesh()
	}
	points3D, boundaries := polygonizeBounds(bounds)
	return trimPolygonized(points3D, boundaries, project, lift, advancingFront)
}

// trimPolygonized is trimWithProjector's core, taking already-polygonized
// boundary points: used directly by Cylinder.Trim, which must polygonize
// the bounds first to compute the ring map's distance parameter before any
// projecting can happen, and by BSplineSurface.Trim, which projects all
// boundary points in one ProjectPoints batch.
func trimPolygonized(points3D []gm.Point3, boundaries []int, project func(gm.Point3) gm.Vec2, lift func(gm.Vec2) gm.Point3, advancingFront bool) mesh.TriangleMesh {
	if len(points3D) < 3 {
		return mesh.NewTriangleMesh()
	}

	points2D := make([]gm.Vec2, len(points3D))
	for i, p := range points3D {
		points2D[i] = project(p)
	}

	reversed := false
	if mesh.SignedArea(points2D, boundaries[0], boundaries[1]) <= 0 {
		reversed = true
		points2D, points3D = reverseBoundary(points2D, points3D, boundaries)
	}

	var verts2D []gm.Vec2
	var triangles []uint32
	if advancingFront {
		verts2D, triangles = mesh.GenerateTriangularMesh(points2D, boundaries)
	} else {
		verts2D = points2D
		triangles = mesh.Triangulate(points2D, boundaries)
	}

	if len(triangles) == 0 {
		return mesh.NewTriangleMesh()
	}

	if reversed {
		for i := 0; i+2 < len(triangles); i += 3 {
			triangles[i+1], triangles[i+2] = triangles[i+2], triangles[i+1]
		}
	}

	vertices := make([]gm.Point3, len(verts2D))
	copy(vertices, points3D)
	for i := len(points3D); i < len(verts2D); i++ {
		vertices[i] = lift(verts2D[i])
	}

	return mesh.TriangleMesh{Vertices: vertices, Triangles: triangles}
}
