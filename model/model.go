// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model is the kernel's domain package: it glues faces and curve
// groups into a Model and serializes it as STL, OBJ, or SVG.
package model

import (
	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/export"
	"github.com/cpmech/goparam/mesh"
)

// Face is anything that tessellates into a triangle mesh — satisfied by
// surface.SurfacePatch and surface.TrimmedSurface.
type Face interface {
	GetTriangleMesh() mesh.TriangleMesh
}

// Model is a collection of faces (tessellated for STL/OBJ) and curve
// groups (sampled for SVG).
type Model struct {
	Faces  []Face
	Curves []curve.Polycurve
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddFace appends a face to the model.
func (m *Model) AddFace(face Face) {
	m.Faces = append(m.Faces, face)
}

// AddCurve appends a curve group to the model.
func (m *Model) AddCurve(group curve.Polycurve) {
	m.Curves = append(m.Curves, group)
}

func (m *Model) meshes() []mesh.TriangleMesh {
	out := make([]mesh.TriangleMesh, len(m.Faces))
	for i, face := range m.Faces {
		out[i] = face.GetTriangleMesh()
	}
	return out
}

// SaveAsSTL tessellates every face and writes a single binary STL file.
func (m *Model) SaveAsSTL(filename string) error {
	return export.WriteSTL(filename, m.meshes())
}

// SaveAsOBJ tessellates every face and writes a single Wavefront OBJ file.
func (m *Model) SaveAsOBJ(filename string) error {
	return export.WriteOBJ(filename, m.meshes())
}

// SaveAsSVG writes every curve group as one path in a single SVG document.
func (m *Model) SaveAsSVG(filename string) error {
	return export.WriteSVG(filename, m.Curves)
}
