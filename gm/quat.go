// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

import "math"

// Quat is a unit quaternion used to rotate Vec3 values about an arbitrary
// axis. Construct with QuatFromAxisAngle.
type Quat struct {
	X, Y, Z, W F
}

// QuatFromAxisAngle builds the quaternion that rotates by angle radians
// about axis, which must already be normalized (the caller is responsible
// for normalizing it — the STEP reader normalizes the axes it extracts,
// while Circle, Cylinder and SpinSurface use their Axis field as given).
func QuatFromAxisAngle(axis Vec3, angle F) Quat {
	half := angle / 2
	s := math.Sin(half)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(half)}
}

// Rotate applies the quaternion rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}
