// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goparam/gm"
)

// BezierSurface is the tensor product of the Bernstein basis in both
// parameter directions; control points are laid out rows x cols with
// row index varying with v and column index varying with u.
type BezierSurface struct {
	DefaultTrim
	ControlPoints *gm.Grid[gm.Point3]
}

// NewBezierSurface validates that both grid dimensions exceed 1.
func NewBezierSurface(controlPoints *gm.Grid[gm.Point3]) BezierSurface {
	if controlPoints.Rows() < 2 || controlPoints.Cols() < 2 {
		chk.Panic("surface.NewBezierSurface: control point grid must be at least 2x2, got %dx%d", controlPoints.Rows(), controlPoints.Cols())
	}
	return BezierSurface{ControlPoints: controlPoints}
}

// Point evaluates point(u,v) = Σ_i Σ_j B_{j,m}(u)·B_{i,n}(v)·P_{i,j}.
func (s BezierSurface) Point(u, v F) gm.Point3 {
	n, m := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	basisU := gm.Bernstein(m, u)
	basisV := gm.Bernstein(n, v)
	point := gm.Point3{}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			point = point.Add(s.ControlPoints.At(i, j).Scale(basisU[j] * basisV[i]))
		}
	}
	return point
}

var _ Surface = BezierSurface{}

// BezierSurfaceR is the rational (4D control point) tensor-product Bézier
// surface.
type BezierSurfaceR struct {
	DefaultTrim
	ControlPoints *gm.Grid[gm.Point4]
}

// Point evaluates the rational Bézier surface and perspective-divides by w.
func (s BezierSurfaceR) Point(u, v F) gm.Point3 {
	n, m := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	basisU := gm.Bernstein(m, u)
	basisV := gm.Bernstein(n, v)
	point := gm.Point4{}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			point = point.Add(s.ControlPoints.At(i, j).Scale(basisU[j] * basisV[i]))
		}
	}
	return point.Truncate().Scale(1 / point.W)
}

var _ Surface = BezierSurfaceR{}
