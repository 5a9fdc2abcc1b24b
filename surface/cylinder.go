// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/mesh"
)

// Cylinder is the surface point(length, angle) = origin + length*axis +
// R(axis,angle)*ref_dir*radius.
type Cylinder struct {
	Origin gm.Point3
	Axis   gm.Vec3
	RefDir gm.Vec3
	Radius F
}

// Point evaluates the cylinder at (length, angle).
func (c Cylinder) Point(length, angle F) gm.Point3 {
	rotation := gm.QuatFromAxisAngle(c.Axis, angle)
	return c.Origin.Add(c.Axis.Scale(length)).Add(rotation.Rotate(c.RefDir).Scale(c.Radius))
}

// Project returns (axis.(p-origin), atan2(y,x) in [0,2pi)).
func (c Cylinder) Project(p gm.Point3) (F, F) {
	d := p.Sub(c.Origin)
	perp := c.Axis.Cross(c.RefDir)
	angle := math.Atan2(d.Dot(perp), d.Dot(c.RefDir))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return d.Dot(c.Axis), angle
}

// projectToRing embeds a point on the cylinder into a seamless 2D ring: a
// radial projection onto the plane perpendicular to axis at signed
// distance d, so that the periodic angle coordinate becomes an ordinary
// 2D angle and the axial coordinate becomes radial distance from center.
func (c Cylinder) projectToRing(p gm.Point3, d F) gm.Vec2 {
	rel := p.Sub(c.Origin)
	x := rel.Dot(c.RefDir)
	y := rel.Dot(c.Axis.Cross(c.RefDir))
	z := rel.Dot(c.Axis)
	scale := d / (d - z)
	return gm.NewVec2(x*scale, y*scale)
}

// generatePointFromRing is the inverse of projectToRing: it scales the 2D
// point to radius and reconstructs the length coordinate from the ring's
// scale factor.
func (c Cylinder) generatePointFromRing(p gm.Vec2, d F) gm.Point3 {
	r := p.Length()
	scale := r * gm.InvOrZero(c.Radius)
	angle := math.Atan2(p.Y, p.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	length := d - d*gm.InvOrZero(scale)
	return c.Point(length, angle)
}

// Trim triangulates the ring polygon obtained by projectToRing with ear
// clipping, then lifts any Steiner vertex back through
// generatePointFromRing — the cylinder's periodic theta parameter means
// direct (length,angle) triangulation would tear across the seam.
func (c Cylinder) Trim(bounds []EdgeLoop) mesh.TriangleMesh {
	if len(bounds) == 0 {
		return mesh.NewTriangleMesh()
	}
	points3D, boundaries := polygonizeBounds(bounds)
	if len(points3D) < 3 {
		return mesh.NewTriangleMesh()
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points3D {
		z := p.Sub(c.Origin).Dot(c.Axis)
		lo = utl.Min(lo, z)
		hi = utl.Max(hi, z)
	}
	span := hi - lo
	d := 2 * span
	if d <= 0 {
		d = 2 * c.Radius
	}

	return trimPolygonized(points3D, boundaries,
		func(p gm.Point3) gm.Vec2 { return c.projectToRing(p, d) },
		func(uv gm.Vec2) gm.Point3 { return c.generatePointFromRing(uv, d) },
		false)
}

var _ Surface = Cylinder{}
