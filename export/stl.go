// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export implements the binary STL, OBJ, and SVG writers, plus
// the point-cloud load/save helpers.
package export

import (
	"encoding/binary"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/mesh"
)

const stlHeaderSize = 80

// WriteSTL serializes meshes (one per face, concatenated) into a single
// binary STL file: an 80-byte header, a 4-byte little-endian triangle
// count placeholder backpatched after all faces are written, and per
// triangle a zero normal, three vertices, and a zero attribute byte
// count.
func WriteSTL(filename string, meshes []mesh.TriangleMesh) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return chk.Err("export.WriteSTL: cannot create %q: %v", filename, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	header := make([]byte, stlHeaderSize)
	name := stemOf(filename)
	copy(header, []byte(io.Sf("Binary STL file\nName: %-57s", name)))
	if _, err = file.Write(header); err != nil {
		return chk.Err("export.WriteSTL: %v", err)
	}
	if err = binary.Write(file, binary.LittleEndian, uint32(0)); err != nil {
		return chk.Err("export.WriteSTL: %v", err)
	}

	var triangleCount uint32
	for _, m := range meshes {
		for i := 0; i+2 < len(m.Triangles); i += 3 {
			triangleCount++
			if err = writeZeroVec3f(file); err != nil {
				return chk.Err("export.WriteSTL: %v", err)
			}
			for _, index := range m.Triangles[i : i+3] {
				p := m.Vertices[index]
				if err = binary.Write(file, binary.LittleEndian, [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}); err != nil {
					return chk.Err("export.WriteSTL: %v", err)
				}
			}
			if _, err = file.Write([]byte{0, 0}); err != nil {
				return chk.Err("export.WriteSTL: %v", err)
			}
		}
	}

	if _, err = file.Seek(stlHeaderSize, goio.SeekStart); err != nil {
		return chk.Err("export.WriteSTL: %v", err)
	}
	if err = binary.Write(file, binary.LittleEndian, triangleCount); err != nil {
		return chk.Err("export.WriteSTL: %v", err)
	}
	io.Pfblue2("file <%s> written (%d triangles)\n", filename, triangleCount)
	return nil
}

func writeZeroVec3f(w goio.Writer) error {
	return binary.Write(w, binary.LittleEndian, [3]float32{0, 0, 0})
}

func stemOf(filename string) string {
	base := filepath.Base(filename)
	return base[:len(base)-len(filepath.Ext(base))]
}
