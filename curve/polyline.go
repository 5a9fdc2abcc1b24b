// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/gosl/chk"
)

// Polyline is a piecewise-linear curve parameterized by t ∈ [0,1], the
// arc-length fraction over the precomputed total length.
type Polyline struct {
	DefaultRefine
	Vertices       []gm.Point3
	segmentLengths []F
	length         F
}

// NewPolyline builds a Polyline from vertices, which must have at least 2
// entries, precomputing per-segment and total arc length.
func NewPolyline(vertices []gm.Point3) Polyline {
	if len(vertices) < 2 {
		chk.Panic("curve.NewPolyline: need at least 2 vertices, got %d", len(vertices))
	}
	lengths := make([]F, len(vertices)-1)
	total := F(0)
	for i := 0; i < len(vertices)-1; i++ {
		lengths[i] = vertices[i+1].Distance(vertices[i])
		total += lengths[i]
	}
	return Polyline{Vertices: vertices, segmentLengths: lengths, length: total}
}

// Start returns the first vertex.
func (p Polyline) Start() gm.Point3 { return p.Vertices[0] }

// End returns the last vertex.
func (p Polyline) End() gm.Point3 { return p.Vertices[len(p.Vertices)-1] }

// Length returns the total arc length.
func (p Polyline) Length() F { return p.length }

// NearestVertex returns the index of the vertex nearest point.
func (p Polyline) NearestVertex(point gm.Point3) int {
	return findNearestPoint(p.Vertices, point)
}

// Point walks cumulative segment lengths to find the point at arc-length
// fraction t.
func (p Polyline) Point(t F) gm.Point3 {
	if t <= 0 {
		return p.Start()
	}
	if t >= 1 {
		return p.End()
	}
	length := t * p.length
	for index, segLen := range p.segmentLengths {
		if length > segLen {
			length -= segLen
		} else {
			return p.Vertices[index].Lerp(p.Vertices[index+1], length/segLen)
		}
	}
	return p.End()
}

// Project picks the segment minimizing point-to-segment distance, then
// returns the clamped arc-length fraction of the foot of the
// perpendicular onto that segment.
func (p Polyline) Project(point gm.Point3) (F, error) {
	min := F(-1)
	minIndex := 0
	for i := 0; i < len(p.Vertices)-1; i++ {
		d := distanceToSegment(p.Vertices[i], p.Vertices[i+1], point)
		if min < 0 || d < min {
			min = d
			minIndex = i
		}
	}

	length := F(0)
	for i := 0; i < minIndex; i++ {
		length += p.segmentLengths[i]
	}
	length += point.Sub(p.Vertices[minIndex]).Dot(p.Vertices[minIndex+1].Sub(p.Vertices[minIndex]).Normalize())

	ratio := length / p.length
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return ratio, nil
}

var _ Curve = Polyline{}
