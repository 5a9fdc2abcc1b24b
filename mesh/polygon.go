// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the 2D triangulation engine (ear-clipping and
// advancing-front), the multi-contour bridge merge, and the
// Grid-to-TriangleMesh converter — the meshing layer of the kernel.
package mesh

import (
	"math"
	"sort"

	"github.com/cpmech/goparam/gm"
)

type convexity int

const (
	convexVertex convexity = iota
	collinearVertex
	concaveVertex
)

func classify(a, b, c gm.Vec2) convexity {
	product := b.Sub(a).PerpDot(c.Sub(b))
	if gm.Near(product, 0) {
		return collinearVertex
	}
	if product > 0 {
		return convexVertex
	}
	return concaveVertex
}

// ComputeVertexConvexity classifies every vertex of a single closed polygon
// given by indices [lo,hi) into points, dropping collinear or duplicate
// vertices. It returns the surviving vertex order and the sorted indices of
// its concave vertices.
func ComputeVertexConvexity(points []gm.Vec2, lo, hi int) (vertices []int, concave []int) {
	n := hi - lo
	vertices = make([]int, 0, n)
	for i := 0; i < n; i++ {
		prev := points[lo+(n+i-1)%n]
		curr := points[lo+i]
		next := points[lo+(i+1)%n]
		switch classify(prev, curr, next) {
		case convexVertex:
			vertices = append(vertices, lo+i)
		case concaveVertex:
			vertices = append(vertices, lo+i)
			concave = append(concave, lo+i)
		}
	}
	return
}

// FindConcaveVertices re-classifies a vertex ring (typically just produced
// by MergePolygons), dropping collinear or duplicate vertices from it, and
// returns the surviving ring together with the sorted concave indices.
func FindConcaveVertices(points []gm.Vec2, vertices []int) ([]int, []int) {
	n := len(vertices)
	var toDelete []int
	var concave []int
	for i := 0; i < n; i++ {
		prev := points[vertices[(n+i-1)%n]]
		curr := points[vertices[i]]
		next := points[vertices[(i+1)%n]]
		switch classify(prev, curr, next) {
		case concaveVertex:
			concave = append(concave, vertices[i])
		case collinearVertex:
			toDelete = append(toDelete, i)
		}
	}
	out := append([]int(nil), vertices...)
	for i := len(toDelete) - 1; i >= 0; i-- {
		j := toDelete[i]
		out = append(out[:j], out[j+1:]...)
	}
	sort.Ints(concave)
	return out, concave
}

func searchSorted(sorted []int, v int) (int, bool) {
	i := sort.SearchInts(sorted, v)
	if i < len(sorted) && sorted[i] == v {
		return i, true
	}
	return i, false
}

func isInsideTriangle(a, b, c, p gm.Vec2) bool {
	return a.Sub(p).PerpDot(b.Sub(p)) >= 0 &&
		b.Sub(p).PerpDot(c.Sub(p)) >= 0 &&
		c.Sub(p).PerpDot(a.Sub(p)) >= 0
}

func isEar(points []gm.Vec2, concave []int, prev, curr, next int) bool {
	for _, other := range concave {
		if other != prev && other != next {
			if isInsideTriangle(points[prev], points[curr], points[next], points[other]) {
				return false
			}
		}
	}
	return true
}

// EarClip triangulates the simple polygon given by vertices (indices into
// points) and its already-classified concave subset (sorted), repeatedly
// clipping convex-vertex ears until three vertices remain.
func EarClip(points []gm.Vec2, vertices []int, concave []int) []uint32 {
	vertices = append([]int(nil), vertices...)
	concave = append([]int(nil), concave...)
	triangles := make([]uint32, 0, maxInt(len(vertices)-2, 0)*3)
	prevM := -1

	for {
		m := len(vertices)
		if prevM >= 0 && m >= prevM {
			break
		}
		prevM = m
		if m < 3 {
			break
		}
		if m == 3 {
			triangles = append(triangles, uint32(vertices[0]), uint32(vertices[1]), uint32(vertices[2]))
			break
		}

		i := 0
		for i < m {
			curr := vertices[i]
			if _, ok := searchSorted(concave, curr); !ok {
				prev := vertices[(m+i-1)%m]
				next := vertices[(i+1)%m]
				if isEar(points, concave, prev, curr, next) {
					triangles = append(triangles, uint32(prev), uint32(curr), uint32(next))

					toDelete := []int{i}

					if j, ok := searchSorted(concave, prev); ok {
						prevPrev := vertices[(m+i-2+m)%m]
						switch classify(points[prevPrev], points[prev], points[next]) {
						case convexVertex:
							concave = append(concave[:j], concave[j+1:]...)
						case collinearVertex:
							toDelete = append(toDelete, (m+i-1)%m)
						}
					}
					if j, ok := searchSorted(concave, next); ok {
						nextNext := vertices[(i+2)%m]
						switch classify(points[prev], points[next], points[nextNext]) {
						case convexVertex:
							concave = append(concave[:j], concave[j+1:]...)
						case collinearVertex:
							toDelete = append(toDelete, (i+1)%m)
						}
					}

					sort.Ints(toDelete)
					for k := len(toDelete) - 1; k >= 0; k-- {
						j := toDelete[k]
						vertices = append(vertices[:j], vertices[j+1:]...)
					}
					m -= len(toDelete)
				}
			}
			i++
		}
	}
	return triangles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func distanceToSegment2D(a, b, p gm.Vec2) F {
	ap := p.Sub(a)
	ab := b.Sub(a)
	product := ap.Dot(ab)
	if product <= 0 {
		return ap.Length()
	}
	if product >= ab.LengthSquared() {
		return p.Sub(b).Length()
	}
	return math.Abs(ap.PerpDot(ab)) / ab.Length()
}

// MergePolygons bridges each hole to the outer loop, in decreasing
// maximum-x order, so that the combined contour is a single simple
// polygon. boundaries is [0, e1, e2, ...] delimiting consecutive loops in
// points (as consumed by EdgeLoop polygonization).
func MergePolygons(points []gm.Vec2, boundaries []int) []int {
	type loopInfo struct {
		start, end, iMax int
		xMax              F
	}
	loops := make([]loopInfo, 0, len(boundaries)-1)
	for w := 0; w+1 < len(boundaries); w++ {
		start, end := boundaries[w], boundaries[w+1]
		xMax := math.Inf(-1)
		iMax := start
		for index := start; index < end; index++ {
			if points[index].X > xMax {
				xMax = points[index].X
				iMax = index
			}
		}
		loops = append(loops, loopInfo{start, end, iMax, xMax})
	}
	sort.Slice(loops, func(i, j int) bool { return loops[i].xMax < loops[j].xMax })

	outer := loops[len(loops)-1]
	loops = loops[:len(loops)-1]
	vertices := make([]int, 0, len(points)+len(boundaries)-1)
	for i := outer.start; i < outer.end; i++ {
		vertices = append(vertices, i)
	}
	for k := len(loops) - 1; k >= 0; k-- {
		l := loops[k]
		vertices = mergeTwoPolygons(points, vertices, l.start, l.end, l.iMax)
	}
	return vertices
}

func mergeTwoPolygons(points []gm.Vec2, outer []int, innerStart, innerEnd, maxXIndex int) []int {
	innerPoint := points[maxXIndex]
	min := math.Inf(1)
	minIndex := 0
	for i := 0; i < len(outer); i++ {
		d := distanceToSegment2D(points[outer[i]], points[outer[(i+1)%len(outer)]], innerPoint)
		if d < min {
			min = d
			minIndex = i
		}
	}
	insertAt := minIndex + 1

	bridge := make([]int, 0, (innerEnd-maxXIndex)+(maxXIndex-innerStart+1)+1)
	for index := maxXIndex; index < innerEnd; index++ {
		bridge = append(bridge, index)
	}
	for index := innerStart; index <= maxXIndex; index++ {
		bridge = append(bridge, index)
	}
	bridge = append(bridge, outer[minIndex])

	result := make([]int, 0, len(outer)+len(bridge))
	result = append(result, outer[:insertAt]...)
	result = append(result, bridge...)
	result = append(result, outer[insertAt:]...)
	return result
}

// Triangulate is the top-level polygon-triangulation entry point: a single
// loop is classified directly; multiple loops (an outer boundary plus
// holes) are bridged by MergePolygons and re-classified before ear
// clipping.
func Triangulate(points []gm.Vec2, boundaries []int) []uint32 {
	var vertices, concave []int
	if len(boundaries) == 2 {
		vertices, concave = ComputeVertexConvexity(points, boundaries[0], boundaries[1])
	} else {
		merged := MergePolygons(points, boundaries)
		vertices, concave = FindConcaveVertices(points, merged)
	}
	return EarClip(points, vertices, concave)
}

// SignedArea returns twice the signed area of the polygon given by indices
// [lo,hi) into points; positive for counter-clockwise orientation.
func SignedArea(points []gm.Vec2, lo, hi int) F {
	area := F(0)
	n := hi - lo
	for i := 0; i < n; i++ {
		a := points[lo+i]
		b := points[lo+(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}
