// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/goparam/gm"

// Line is the curve point(u) = origin + u*direction.
type Line struct {
	DefaultRefine
	Origin    gm.Point3
	Direction gm.Vec3
}

// Point evaluates the line at parameter u.
func (l Line) Point(u F) gm.Point3 {
	return l.Origin.Add(l.Direction.Scale(u))
}

// Project returns the parameter of the foot of the perpendicular from p
// onto the (infinite) line, i.e. the exact inverse of Point — the segment
// is not bounded so no clamping is required.
func (l Line) Project(p gm.Point3) (F, error) {
	denom := l.Direction.LengthSquared()
	if denom <= 0 {
		return 0, nil
	}
	return p.Sub(l.Origin).Dot(l.Direction) / denom, nil
}

var _ Curve = Line{}
