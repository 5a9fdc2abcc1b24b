// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
)

// SweepSurface is created by translating a section curve along a path
// curve: point(p, s) = path(p) + section(s).
type SweepSurface struct {
	DefaultTrim
	Path    curve.Curve
	Section curve.Curve
}

// Point evaluates the surface at (pathParam, sectionParam).
func (s SweepSurface) Point(pathParam, sectionParam F) gm.Point3 {
	return s.Path.Point(pathParam).Add(s.Section.Point(sectionParam))
}

var _ Surface = SweepSurface{}
