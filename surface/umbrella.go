// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/goparam/gm"
)

// Umbrella is a closed-form cycloid-of-revolution surface, useful as a
// fixed-shape smoke-test patch: point(theta, phi) traces a cycloid profile
// of the given radius spun about the z axis.
type Umbrella struct {
	DefaultTrim
	Radius F
}

// Point evaluates the umbrella surface at (theta, phi).
func (u Umbrella) Point(theta, phi F) gm.Point3 {
	r := u.Radius / math.Pi
	sinT, cosT := math.Sincos(theta)
	sin, cos := math.Sincos(phi)
	return gm.NewVec3(r*(theta-sinT)*cos, r*(theta-sinT)*sin, r*(1+cosT))
}

var _ Surface = Umbrella{}
