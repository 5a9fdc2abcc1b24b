// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/mesh"
)

// Plane is the surface point(u,v) = origin + u*u_axis + v*v_axis.
type Plane struct {
	Origin gm.Point3
	Normal gm.Vec3
	UAxis  gm.Vec3
	VAxis  gm.Vec3
}

// Point evaluates the plane at parameters (u,v).
func (p Plane) Point(u, v F) gm.Point3 {
	return p.Origin.Add(p.UAxis.Scale(u)).Add(p.VAxis.Scale(v))
}

// Project returns (u_axis.(p-origin), v_axis.(p-origin)).
func (p Plane) Project(point gm.Point3) gm.Vec2 {
	d := point.Sub(p.Origin)
	return gm.NewVec2(p.UAxis.Dot(d), p.VAxis.Dot(d))
}

// Trim projects each loop point into (u,v) and triangulates by ear
// clipping; no Steiner points are needed on a plane.
func (p Plane) Trim(bounds []EdgeLoop) mesh.TriangleMesh {
	return trimWithProjector(bounds, p.Project, func(uv gm.Vec2) gm.Point3 {
		return p.Point(uv.X, uv.Y)
	}, false)
}

var _ Surface = Plane{}
