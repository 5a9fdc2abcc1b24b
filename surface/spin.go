// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
)

// SpinSurface is a surface of revolution: a section curve spun about an
// axis through origin.
type SpinSurface struct {
	DefaultTrim
	Origin  gm.Point3
	Axis    gm.Vec3
	Section curve.Curve
}

// Point evaluates point(param, angle) = origin + axis_parallel(v) +
// R(axis,angle)·axis_perpendicular(v), where v = section(param) - origin.
func (s SpinSurface) Point(param, angle F) gm.Point3 {
	vector := s.Section.Point(param).Sub(s.Origin)
	parallel := s.Axis.Scale(vector.Dot(s.Axis))
	perpendicular := vector.Sub(parallel)
	rotation := gm.QuatFromAxisAngle(s.Axis, angle)
	return s.Origin.Add(parallel).Add(rotation.Rotate(perpendicular))
}

var _ Surface = SpinSurface{}
