// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/goparam/gm"
)

// Circle is the curve point(θ) = center + R(axis,θ)·ref_dir·radius.
type Circle struct {
	Center  gm.Point3
	Radius  F
	Axis    gm.Vec3
	RefDir  gm.Vec3
}

// Point evaluates the circle at angle (radians).
func (c Circle) Point(angle F) gm.Point3 {
	rotation := gm.QuatFromAxisAngle(c.Axis, angle)
	return c.Center.Add(rotation.Rotate(c.RefDir).Scale(c.Radius))
}

// Project decomposes p-center into the (ref_dir, axis×ref_dir) plane and
// returns atan2(y,x) mapped into [0, 2π).
func (c Circle) Project(p gm.Point3) (F, error) {
	perp := c.Axis.Cross(c.RefDir)
	v := p.Sub(c.Center)
	x := v.Dot(c.RefDir)
	y := v.Dot(perp)
	angle := math.Atan2(y, x)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle, nil
}

// RefineParameterRange lifts the out-of-order endpoint by a full turn so
// sampling the range in increasing parameter direction matches the edge
// sense: if sameSense and u0 > u1, lift u1 by 2π; if !sameSense and
// u0 < u1, lift u0 by 2π.
func (c Circle) RefineParameterRange(u0, u1 F, sameSense bool) (F, F) {
	if sameSense && u0 > u1 {
		u1 += 2 * math.Pi
	} else if !sameSense && u0 < u1 {
		u0 += 2 * math.Pi
	}
	return u0, u1
}

var _ Curve = Circle{}
