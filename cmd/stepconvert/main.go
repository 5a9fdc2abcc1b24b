// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stepconvert reads a STEP AP214 physical file and writes its
// tessellated faces as STL or OBJ.
package main

import (
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/step"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	stepPath, _ := io.ArgToFilename(0, "", ".step", true)
	outPath := io.ArgToString(1, "model.stl")

	io.Pf("\n%v\n", io.ArgsTable(
		"STEP AP214 file", "stepPath", stepPath,
		"output mesh file", "outPath", outPath,
	))

	m, err := step.ReadModel(stepPath)
	if err != nil {
		chk.Panic("stepconvert: %v", err)
	}
	io.Pf("read %d face(s)\n", len(m.Faces))

	if strings.HasSuffix(strings.ToLower(outPath), ".obj") {
		err = m.SaveAsOBJ(outPath)
	} else {
		err = m.SaveAsSTL(outPath)
	}
	if err != nil {
		chk.Panic("stepconvert: %v", err)
	}
}
