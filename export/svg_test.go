// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
)

func Test_write_svg_line_and_polyline01(tst *testing.T) {

	chk.PrintTitle("write_svg_line_and_polyline01")

	line := curve.Line{Origin: gm.NewVec3(0, 0, 0), Direction: gm.NewVec3(10, 0, 0)}
	poly := curve.NewPolyline([]gm.Point3{gm.NewVec3(10, 0, 0), gm.NewVec3(10, 5, 0), gm.NewVec3(0, 5, 0)})

	polycurve := curve.Polycurve{Segments: []curve.Segment{
		{Curve: line, U0: 0, U1: 1, Division: 1},
		{Curve: poly, U0: 0, U1: 1, Division: 8},
	}}

	dir := tst.TempDir()
	filename := filepath.Join(dir, "shape.svg")
	if err := WriteSVG(filename, []curve.Polycurve{polycurve}); err != nil {
		tst.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `<svg width="300mm" height="300mm" viewBox="0 0 300 300">`) {
		tst.Fatalf("missing expected svg root: %s", content)
	}
	if !strings.Contains(content, "M 0.00,0.00 L 10.00,0.00 L 10.00,0.00 L 10.00,5.00 L 0.00,5.00") {
		tst.Fatalf("unexpected path data: %s", content)
	}
}

func Test_write_svg_cubic_bspline01(tst *testing.T) {

	chk.PrintTitle("write_svg_cubic_bspline01")

	b := curve.BSplineCurve{
		ControlPoints: []gm.Point3{gm.NewVec3(0, 0, 0), gm.NewVec3(1, 2, 0), gm.NewVec3(2, -1, 0), gm.NewVec3(3, 0, 0)},
		Knots:         gm.BezierKnot(3),
		Degree:        3,
	}
	polycurve := curve.Polycurve{Segments: []curve.Segment{
		{Curve: b, U0: 0, U1: 1, Division: 16},
	}}

	dir := tst.TempDir()
	filename := filepath.Join(dir, "bezier.svg")
	if err := WriteSVG(filename, []curve.Polycurve{polycurve}); err != nil {
		tst.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "M 0.00,0.00 C 1.00,2.00 2.00,-1.00 3.00,0.00") {
		tst.Fatalf("expected a single cubic Bezier command, got: %s", content)
	}
}
