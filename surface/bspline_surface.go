// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/mesh"
)

// BSplineSurface is a tensor-product B-spline surface: point(u,v) =
// Σᵢⱼ N_{i,p}(u)·N_{j,q}(v)·P_{i,j}, with control points laid out rows
// (v direction) x cols (u direction).
type BSplineSurface struct {
	ControlPoints    *gm.Grid[gm.Point3]
	KnotsU, KnotsV   gm.KnotVector
	DegreeU, DegreeV int
	zero             bool
}

// NewBSplineSurface validates the precondition control_points.rows >=
// degree_v+1, control_points.cols >= degree_u+1 and builds uniform clamped
// knot vectors for both directions.
func NewBSplineSurface(controlPoints *gm.Grid[gm.Point3], degreeU, degreeV int) BSplineSurface {
	if controlPoints.Rows() <= degreeV || controlPoints.Cols() <= degreeU {
		chk.Panic("surface.NewBSplineSurface: need rows>degreeV and cols>degreeU, got rows=%d cols=%d degreeU=%d degreeV=%d",
			controlPoints.Rows(), controlPoints.Cols(), degreeU, degreeV)
	}
	knotsU := gm.UniformKnot(degreeU, controlPoints.Cols()-degreeU)
	knotsV := gm.UniformKnot(degreeV, controlPoints.Rows()-degreeV)
	return BSplineSurface{ControlPoints: controlPoints, KnotsU: knotsU, KnotsV: knotsV, DegreeU: degreeU, DegreeV: degreeV}
}

func zeroBSplineSurface() BSplineSurface {
	return BSplineSurface{zero: true}
}

// Point evaluates the surface, or the zero vector for the degenerate
// bilinear-zero surface returned by differentiating a degree-0 direction.
func (s BSplineSurface) Point(u, v F) gm.Point3 {
	if s.zero {
		return gm.Point3{}
	}
	basisU := s.KnotsU.BsplineBasis(s.DegreeU, u)
	basisV := s.KnotsV.BsplineBasis(s.DegreeV, v)
	rows, cols := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	point := gm.Point3{}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			point = point.Add(s.ControlPoints.At(i, j).Scale(basisU[j] * basisV[i]))
		}
	}
	return point
}

// DerivativeU returns ∂S/∂u, itself a B-spline surface of degree
// (DegreeU-1, DegreeV); degree 0 degenerates to the zero surface.
func (s BSplineSurface) DerivativeU() BSplineSurface {
	if s.zero || s.DegreeU == 0 {
		return zeroBSplineSurface()
	}
	p := F(s.DegreeU)
	knotsU := s.KnotsU.Shrink()
	spans := knotsU.Spans(s.DegreeU)
	rows, cols := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	grid := gm.NewGrid[gm.Point3](rows, cols-1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols-1; j++ {
			d := s.ControlPoints.At(i, j+1).Sub(s.ControlPoints.At(i, j)).Scale(p * gm.InvOrZero(spans[j]))
			grid.Set(i, j, d)
		}
	}
	return BSplineSurface{ControlPoints: grid, KnotsU: knotsU, KnotsV: s.KnotsV, DegreeU: s.DegreeU - 1, DegreeV: s.DegreeV}
}

// DerivativeV returns ∂S/∂v, itself a B-spline surface of degree
// (DegreeU, DegreeV-1); degree 0 degenerates to the zero surface.
func (s BSplineSurface) DerivativeV() BSplineSurface {
	if s.zero || s.DegreeV == 0 {
		return zeroBSplineSurface()
	}
	q := F(s.DegreeV)
	knotsV := s.KnotsV.Shrink()
	spans := knotsV.Spans(s.DegreeV)
	rows, cols := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	grid := gm.NewGrid[gm.Point3](rows-1, cols)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols; j++ {
			d := s.ControlPoints.At(i+1, j).Sub(s.ControlPoints.At(i, j)).Scale(q * gm.InvOrZero(spans[i]))
			grid.Set(i, j, d)
		}
	}
	return BSplineSurface{ControlPoints: grid, KnotsU: s.KnotsU, KnotsV: knotsV, DegreeU: s.DegreeU, DegreeV: s.DegreeV - 1}
}

// Normals batch-evaluates (∂u x ∂v).normalize() at each (u,v) pair.
func (s BSplineSurface) Normals(params [][2]F) []gm.Vec3 {
	su := s.DerivativeU()
	sv := s.DerivativeV()
	out := make([]gm.Vec3, len(params))
	for i, uv := range params {
		out[i] = su.Point(uv[0], uv[1]).Cross(sv.Point(uv[0], uv[1])).Normalize()
	}
	return out
}

// ProjectPoints finds, for each point, the (u,v) nearest it: seed from the
// nearest vertex of a (4n x 4m)-sample grid, then 2D Newton iterate on
// ∇·r = 0 where r(u,v) = S(u,v)-p, solving the 2x2 linear system with
// la.MatInv each step and clamping (u,v) to the surface's domain, up to 20
// trials.
func (s BSplineSurface) ProjectPoints(points []gm.Point3) []gm.Vec2 {
	su := s.DerivativeU()
	sv := s.DerivativeV()
	suu := su.DerivativeU()
	svv := sv.DerivativeV()
	suv := su.DerivativeV()

	uLo, uHi := s.KnotsU.Range()
	vLo, vHi := s.KnotsV.Range()
	rows, cols := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	uSamples := gm.UniformDivide(uLo, uHi, cols*4)
	vSamples := gm.UniformDivide(vLo, vHi, rows*4)

	sampled := make([]gm.Point3, len(uSamples)*len(vSamples))
	for vi, v := range vSamples {
		for ui, u := range uSamples {
			sampled[vi*len(uSamples)+ui] = s.Point(u, v)
		}
	}

	jac := la.MatAlloc(2, 2)
	inv := la.MatAlloc(2, 2)

	result := make([]gm.Vec2, len(points))
	for k, p := range points {
		bestIdx, bestDist := 0, F(-1)
		for idx, sp := range sampled {
			d := sp.DistanceSquared(p)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				bestIdx = idx
			}
		}
		u := uSamples[bestIdx%len(uSamples)]
		v := vSamples[bestIdx/len(uSamples)]

		for trial := 0; trial < 20; trial++ {
			r := s.Point(u, v).Sub(p)
			if gm.Near2(r.LengthSquared(), 0) {
				break
			}
			Su := su.Point(u, v)
			Sv := sv.Point(u, v)
			ru := Su.Dot(r)
			rv := Sv.Dot(r)
			if gm.Near(ru, 0) && gm.Near(rv, 0) {
				break
			}
			Suu := suu.Point(u, v)
			Svv := svv.Point(u, v)
			Suv := suv.Point(u, v)

			jac[0][0] = Su.LengthSquared() + r.Dot(Suu)
			jac[0][1] = Su.Dot(Sv) + r.Dot(Suv)
			jac[1][0] = jac[0][1]
			jac[1][1] = Sv.LengthSquared() + r.Dot(Svv)

			_, err := la.MatInv(inv, jac, 1e-13)
			if err != nil {
				break
			}
			rhs := [2]F{-ru, -rv}
			du := inv[0][0]*rhs[0] + inv[0][1]*rhs[1]
			dv := inv[1][0]*rhs[0] + inv[1][1]*rhs[1]
			u += du
			v += dv
			if u < uLo {
				u = uLo
			} else if u > uHi {
				u = uHi
			}
			if v < vLo {
				v = vLo
			} else if v > vHi {
				v = vHi
			}
		}
		result[k] = gm.NewVec2(u, v)
	}
	return result
}

// Trim projects the boundary via ProjectPoints and triangulates with the
// advancing front, which is used here (rather than plain ear clipping)
// because freeform B-spline patches typically need Steiner points to keep
// triangles well-shaped.
func (s BSplineSurface) Trim(bounds []EdgeLoop) mesh.TriangleMesh {
	if len(bounds) == 0 {
		return mesh.NewTriangleMesh()
	}
	points3D, boundaries := polygonizeBounds(bounds)
	if len(points3D) < 3 {
		return mesh.NewTriangleMesh()
	}
	uv := s.ProjectPoints(points3D)
	index := 0
	project := func(p gm.Point3) gm.Vec2 {
		v := uv[index]
		index++
		return v
	}
	lift := func(p gm.Vec2) gm.Point3 { return s.Point(p.X, p.Y) }
	return trimPolygonized(points3D, boundaries, project, lift, true)
}

var _ Surface = BSplineSurface{}

// BSplineSurfaceR is the rational (4D control point) tensor-product
// B-spline surface. It has no defined projection, so Trim falls back to
// the empty mesh.
type BSplineSurfaceR struct {
	DefaultTrim
	ControlPoints    *gm.Grid[gm.Point4]
	KnotsU, KnotsV   gm.KnotVector
	DegreeU, DegreeV int
}

// Point evaluates the rational B-spline surface and perspective-divides by w.
func (s BSplineSurfaceR) Point(u, v F) gm.Point3 {
	basisU := s.KnotsU.BsplineBasis(s.DegreeU, u)
	basisV := s.KnotsV.BsplineBasis(s.DegreeV, v)
	rows, cols := s.ControlPoints.Rows(), s.ControlPoints.Cols()
	point := gm.Point4{}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			point = point.Add(s.ControlPoints.At(i, j).Scale(basisU[j] * basisV[i]))
		}
	}
	return point.Truncate().Scale(1 / point.W)
}

var _ Surface = BSplineSurfaceR{}
