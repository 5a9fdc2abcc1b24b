// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/model"
	"github.com/cpmech/goparam/surface"
)

// edgeDivision is the sample count used to polygonize every edge curve
// while building a trimmed surface's boundary loops.
const edgeDivision = 24

// ReadModel parses filename as an ISO-10303-21 physical file and builds
// a Model from its ADVANCED_FACE entities. A face whose geometry or
// bounds use an entity kind this reader does not recognize is skipped,
// with a diagnostic printed through io.Pfyel, rather than failing the whole
// import.
func ReadModel(filename string) (m *model.Model, err error) {
	source, err := io.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	doc := parseDocument(string(source))

	m = model.NewModel()
	for _, face := range doc.findAll("ADVANCED_FACE") {
		if err := addFace(m, doc, face); err != nil {
			io.Pfyel("step: skipping face #%d: %v\n", face.id, err)
		}
	}
	return m, nil
}

// addFace builds the TrimmedSurface for one ADVANCED_FACE and adds it to
// m, recovering from a chk.Panic raised by an unsupported entity kind
// deeper in the surface/curve extraction and turning it into an error.
func addFace(m *model.Model, doc *document, face *entity) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()

	surf := doc.surfaceEntity(asRef(face.args[2]))

	boundRefs := asRefList(face.args[1])
	bounds := make([]surface.EdgeLoop, len(boundRefs))
	for i, boundRef := range boundRefs {
		bounds[i] = doc.faceBound(boundRef)
	}

	m.AddFace(surface.TrimmedSurface{Surface: surf, Bounds: bounds})
	return nil
}

// faceBound builds an EdgeLoop from a FACE_BOUND (or FACE_OUTER_BOUND)
// entity: (name, bound(EdgeLoop ref), orientation). When orientation is
// false the edge list is reversed so every loop is recorded walking its
// geometrically forward direction.
func (d *document) faceBound(id int) surface.EdgeLoop {
	fb := d.get(id)
	loop := d.edgeLoop(asRef(fb.args[1]))
	if !asBool(fb.args[2]) {
		for i, j := 0, len(loop.Edges)-1; i < j; i, j = i+1, j-1 {
			loop.Edges[i], loop.Edges[j] = loop.Edges[j], loop.Edges[i]
		}
		for i := range loop.Edges {
			loop.Edges[i].U0, loop.Edges[i].U1 = loop.Edges[i].U1, loop.Edges[i].U0
		}
	}
	return loop
}

// edgeLoop builds an EdgeLoop from an EDGE_LOOP entity: (name,
// edge_list(list of OrientedEdge refs)).
func (d *document) edgeLoop(id int) surface.EdgeLoop {
	e := d.get(id)
	edgeRefs := asRefList(e.args[1])
	segments := make([]curve.Segment, len(edgeRefs))
	for i, edgeRef := range edgeRefs {
		segments[i] = d.orientedEdge(edgeRef)
	}
	return surface.EdgeLoop{Edges: segments}
}

// orientedEdge builds a Segment from an ORIENTED_EDGE entity: (name,
// edge_start, edge_end, edge_element(EdgeCurve ref), orientation). The
// combined sense passed to the underlying curve's RefineParameterRange
// is orientation XNOR the edge curve's own same_sense.
func (d *document) orientedEdge(id int) curve.Segment {
	oe := d.get(id)
	orientation := asBool(oe.args[4])
	ec := d.get(asRef(oe.args[3]))

	startRef := asRef(ec.args[1])
	endRef := asRef(ec.args[2])
	parentCurve := d.curveEntity(asRef(ec.args[3]))
	sameSense := asBool(ec.args[4])

	startPoint := d.vertexPoint(startRef)
	endPoint := d.vertexPoint(endRef)

	u0, err := parentCurve.Project(startPoint)
	if err != nil {
		chk.Panic("step: edge #%d: %v", id, err)
	}
	u1, err := parentCurve.Project(endPoint)
	if err != nil {
		chk.Panic("step: edge #%d: %v", id, err)
	}

	if !orientation {
		u0, u1 = u1, u0
	}
	combinedSameSense := sameSense == orientation
	u0, u1 = parentCurve.RefineParameterRange(u0, u1, combinedSameSense)

	return curve.Segment{Curve: parentCurve, U0: u0, U1: u1, Division: edgeDivision}
}

// vertexPoint extracts VERTEX_POINT: (name, vertex_geometry(CartesianPoint ref)).
func (d *document) vertexPoint(id int) gm.Point3 {
	e := d.get(id)
	return d.cartesianPoint(asRef(e.args[1]))
}
