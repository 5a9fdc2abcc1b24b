// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
)

func Test_line_project01(tst *testing.T) {

	chk.PrintTitle("line_project01")

	l := Line{Origin: gm.NewVec3(1, 0, 0), Direction: gm.NewVec3(2, 0, 0)}

	u, err := l.Project(gm.NewVec3(5, 3, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "u", 1e-15, u, 2.0)

	p := l.Point(u)
	chk.Vector(tst, "foot of perpendicular", 1e-15, []F{p.X, p.Y, p.Z}, []F{5, 0, 0})
}
