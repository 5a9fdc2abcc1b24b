// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command teapot tessellates a Bézier-patch (.bpt) file — the classic
// Utah teapot's own format: a patch count, then per patch a "m n"
// degree line followed by (m+1)*(n+1) control-point lines — into a
// triangle mesh and writes it as STL or OBJ.
package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/model"
	"github.com/cpmech/goparam/surface"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	bptPath, _ := io.ArgToFilename(0, "", ".bpt", true)
	outPath := io.ArgToString(1, "teapot.stl")
	divisions := io.ArgToInt(2, 16)

	io.Pf("\n%v\n", io.ArgsTable(
		"bézier-patch file", "bptPath", bptPath,
		"output mesh file", "outPath", outPath,
		"subdivisions per patch", "divisions", divisions,
	))

	patches, err := loadBezierPatchFile(bptPath)
	if err != nil {
		chk.Panic("teapot: %v", err)
	}

	m := model.NewModel()
	for _, patch := range patches {
		m.AddFace(surface.SurfacePatch{Surface: patch, U0: 0, U1: 1, V0: 0, V1: 1, DivU: divisions, DivV: divisions})
	}

	if strings.HasSuffix(strings.ToLower(outPath), ".obj") {
		err = m.SaveAsOBJ(outPath)
	} else {
		err = m.SaveAsSTL(outPath)
	}
	if err != nil {
		chk.Panic("teapot: %v", err)
	}
}

// loadBezierPatchFile parses the Utah-teapot .bpt format: a first line
// with the patch count, then per patch a "m n" line (control-point grid
// is (m+1) rows by (n+1) columns) followed by (m+1)*(n+1) "x y z" lines.
func loadBezierPatchFile(filename string) ([]surface.BezierSurface, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var patches []surface.BezierSurface
	var cols, count int
	var points []gm.Point3
	flush := func() {
		if len(points) > 0 {
			patches = append(patches, surface.BezierSurface{ControlPoints: gm.GridFromSlice(points, cols)})
		}
	}
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		switch len(fields) {
		case 1:
			count, _ = strconv.Atoi(fields[0])
		case 2:
			flush()
			m, _ := strconv.Atoi(fields[0])
			n, _ := strconv.Atoi(fields[1])
			cols = n + 1
			points = make([]gm.Point3, 0, (m+1)*(n+1))
		case 3:
			x, _ := strconv.ParseFloat(fields[0], 64)
			y, _ := strconv.ParseFloat(fields[1], 64)
			z, _ := strconv.ParseFloat(fields[2], 64)
			points = append(points, gm.NewVec3(x, y, z))
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(patches) != count {
		io.Pfyel("teapot: expected %d patches, read %d\n", count, len(patches))
	}
	return patches, nil
}
