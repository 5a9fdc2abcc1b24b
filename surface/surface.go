// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface implements the parametric-surface contract and its
// variants: Plane, Cylinder, Bézier surface (3D and rational 4D),
// B-spline surface (3D and rational 4D), SpinSurface, SweepSurface, and
// Umbrella, together with SurfacePatch, EdgeLoop, and TrimmedSurface.
package surface

import (
	"errors"

	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/mesh"
)

// F is the kernel's scalar type.
type F = gm.F

// ErrUnimplemented names operations left undefined on a surface variant.
// No method in this package returns it: the rational variants have no
// projection method, and their Trim is DefaultTrim.
var ErrUnimplemented = errors.New("surface: operation not implemented for this variant")

// Surface is the contract every surface variant satisfies.
type Surface interface {
	// Point evaluates the surface at parameters (u,v).
	Point(u, v F) gm.Point3
	// Trim triangulates the surface bounded by the given edge loops. The
	// default implementation returns an empty mesh.
	Trim(bounds []EdgeLoop) mesh.TriangleMesh
}

// DefaultTrim provides the empty-mesh Trim used by every surface variant
// for which no parameter-space projection is defined (BezierSurface,
// SpinSurface, SweepSurface, Umbrella, and the rational variants).
type DefaultTrim struct{}

// Trim returns an empty mesh.
func (DefaultTrim) Trim(bounds []EdgeLoop) mesh.TriangleMesh {
	return mesh.NewTriangleMesh()
}

// SurfacePatch is a surface together with parameter ranges and sample
// counts. GetPoints samples a (div_u+1) x (div_v+1) grid.
type SurfacePatch struct {
	Surface  Surface
	U0, U1   F
	V0, V1   F
	DivU     int
	DivV     int
}

// GetPoints samples the patch uniformly in both parameter directions.
func (p SurfacePatch) GetPoints() *gm.Grid[gm.Point3] {
	us := gm.UniformDivide(p.U0, p.U1, p.DivU)
	vs := gm.UniformDivide(p.V0, p.V1, p.DivV)
	points := make([]gm.Point3, 0, len(us)*len(vs))
	for _, v := range vs {
		for _, u := range us {
			points = append(points, p.Surface.Point(u, v))
		}
	}
	return gm.GridFromSlice(points, len(us))
}

// GetTriangleMesh samples the patch and stitches it into a triangle mesh,
// used for untrimmed natural-boundary patches (e.g. the teapot's Bézier
// patches).
func (p SurfacePatch) GetTriangleMesh() mesh.TriangleMesh {
	return mesh.FromGrid(p.GetPoints())
}

// EdgeLoop is an ordered sequence of curve segments forming a closed 3D
// curve: the last endpoint coincides with the first within tolerance.
type EdgeLoop struct {
	Edges []curve.Segment
}

// ToPolygon polygonizes the loop: concatenates GetPoints() per edge,
// and drops the final point if it duplicates the first.
func (e EdgeLoop) ToPolygon() []gm.Point3 {
	var vertices []gm.Point3
	for _, edge := range e.Edges {
		vertices = append(vertices, edge.GetPoints()...)
	}
	if len(vertices) > 1 && vertices[0].DistanceSquared(vertices[len(vertices)-1]) < gm.Tolerance2 {
		vertices = vertices[:len(vertices)-1]
	}
	return vertices
}

// TrimmedSurface is a surface plus ordered edge loops in 3D: exactly one
// outer loop oriented counter-clockwise in the surface's parameter space,
// and any remaining loops are holes oriented clockwise.
type TrimmedSurface struct {
	Surface Surface
	Bounds  []EdgeLoop
}

// GetTriangleMesh delegates to the surface's Trim.
func (t TrimmedSurface) GetTriangleMesh() mesh.TriangleMesh {
	return t.Surface.Trim(t.Bounds)
}
