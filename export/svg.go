// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"math"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
)

// F is the kernel's scalar type.
type F = gm.F

const (
	svgWidthMM  = 300
	svgHeightMM = 300
)

// WriteSVG serializes polycurves into a single SVG document: a root
// <svg> sized svgWidthMM x svgHeightMM containing one flipped-y <g>
// (so the image reads with +y up) holding one <path> per polycurve.
// Line and Polyline segments emit straight "L" commands, cubic B-spline
// segments are converted to piecewise Béziers and emit "C" commands, and
// any other curve is sampled and emitted as a polyline.
func WriteSVG(filename string, polycurves []curve.Polycurve) error {
	var buf bytes.Buffer
	buf.WriteString(io.Sf(`<svg width="%dmm" height="%dmm" viewBox="0 0 %d %d">`+"\n", svgWidthMM, svgHeightMM, svgWidthMM, svgHeightMM))
	buf.WriteString(io.Sf(`<g transform="matrix(1 0 0 -1 0 %d)" fill="none" stroke="black">`+"\n", svgHeightMM))
	for _, p := range polycurves {
		buf.WriteString(`<path d="`)
		buf.WriteString(polycurvePathData(p))
		buf.WriteString("\"/>\n")
	}
	buf.WriteString("</g>\n</svg>\n")

	file, err := os.Create(filename)
	if err != nil {
		return chk.Err("export.WriteSVG: cannot create %q: %v", filename, err)
	}
	defer file.Close()
	if _, err = file.Write(buf.Bytes()); err != nil {
		return chk.Err("export.WriteSVG: %v", err)
	}
	io.Pfblue2("file <%s> written\n", filename)
	return nil
}

func polycurvePathData(p curve.Polycurve) string {
	var b strings.Builder
	started := false
	emit := func(command string, pt gm.Point3) {
		if !started {
			b.WriteString("M " + fmtPoint(pt))
			started = true
			return
		}
		b.WriteString(" " + command + " " + fmtPoint(pt))
	}
	sampleFallback := func(seg curve.Segment) {
		for _, pt := range seg.GetPoints() {
			emit("L", pt)
		}
	}

	for _, seg := range p.Segments {
		switch c := seg.Curve.(type) {
		case curve.Line:
			emit("L", c.Point(seg.U0))
			emit("L", c.Point(seg.U1))
		case curve.Polyline:
			for _, v := range c.Vertices {
				emit("L", v)
			}
		case curve.BSplineCurve:
			if c.Degree != 3 {
				sampleFallback(seg)
				continue
			}
			for _, piece := range c.ToPiecewiseBezier() {
				cps := piece.ControlPoints
				if !started {
					b.WriteString("M " + fmtPoint(cps[0]))
					started = true
				}
				b.WriteString(" C " + fmtPoint(cps[1]) + " " + fmtPoint(cps[2]) + " " + fmtPoint(cps[3]))
			}
		default:
			sampleFallback(seg)
		}
	}
	return b.String()
}

func fmtPoint(p gm.Point3) string {
	return io.Sf("%s,%s", truncate2(p.X), truncate2(p.Y))
}

func truncate2(x F) string {
	t := math.Trunc(x*100) / 100
	return io.Sf("%.2f", t)
}
