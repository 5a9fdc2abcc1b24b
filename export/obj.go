// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/mesh"
)

// WriteOBJ serializes meshes (one per face) into a single Wavefront OBJ
// file: per face, one "v x y z" line per vertex followed by "f a b c"
// triangles, with a running 1-based vertex-index offset so a multi-face
// model emits one contiguous file.
func WriteOBJ(filename string, meshes []mesh.TriangleMesh) error {
	var buf bytes.Buffer
	start := uint32(1)
	for _, m := range meshes {
		for _, p := range m.Vertices {
			buf.WriteString(io.Sf("v %v %v %v\n", p.X, p.Y, p.Z))
		}
		for i := 0; i+2 < len(m.Triangles); i += 3 {
			buf.WriteString(io.Sf("f %d %d %d\n", start+m.Triangles[i], start+m.Triangles[i+1], start+m.Triangles[i+2]))
		}
		start += uint32(len(m.Vertices))
	}
	file, err := os.Create(filename)
	if err != nil {
		return chk.Err("export.WriteOBJ: cannot create %q: %v", filename, err)
	}
	defer file.Close()
	if _, err = file.Write(buf.Bytes()); err != nil {
		return chk.Err("export.WriteOBJ: %v", err)
	}
	io.Pfblue2("file <%s> written\n", filename)
	return nil
}
