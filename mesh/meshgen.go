// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/goparam/gm"
)

// halfSqrt3 is the height, as a multiple of |ab|, of an equilateral
// triangle erected on edge ab.
const halfSqrt3 = 0.8660254037844386

// minGridSize guards against a degenerate (near-zero-length) front edge:
// its normal is then given a minimum displacement instead of collapsing.
const minGridSize = 1e-3

type frontEdge struct {
	a, b int
}

// GenerateTriangularMesh triangulates the polygon(s) given by points and
// boundaries (as in Triangulate) by the advancing-front method, inserting
// Steiner points where needed to keep triangles close to equilateral. It
// returns the full vertex list (points plus any new Steiner points
// appended after them) and the triangle index list.
func GenerateTriangularMesh(points []gm.Vec2, boundaries []int) ([]gm.Vec2, []uint32) {
	vertices := append([]gm.Vec2(nil), points...)
	var triangles []uint32

	front := make([]frontEdge, 0, len(points))
	for w := 0; w+1 < len(boundaries); w++ {
		start, end := boundaries[w], boundaries[w+1]
		for i := start; i < end-1; i++ {
			front = append(front, frontEdge{i, i + 1})
		}
		front = append(front, frontEdge{end - 1, start})
	}

	for len(front) > 0 {
		edge := front[len(front)-1]
		front = front[:len(front)-1]

		var selected *int
		for {
			node := findIntersectionWithFront(edge.a, edge.b, selected, front, vertices)
			if node == nil {
				break
			}
			selected = node
		}

		if selected != nil {
			node := *selected
			if idx := findFrontEdge(front, node, edge.a); idx >= 0 {
				front = removeFrontEdge(front, idx)
			} else {
				front = append(front, frontEdge{edge.a, node})
			}
			if idx := findFrontEdge(front, edge.b, node); idx >= 0 {
				front = removeFrontEdge(front, idx)
			} else {
				front = append(front, frontEdge{node, edge.b})
			}
			triangles = append(triangles, uint32(edge.a), uint32(edge.b), uint32(node))
		} else {
			index := len(vertices)
			newPoint := pointOnNormalBisector(vertices[edge.a], vertices[edge.b], halfSqrt3)
			vertices = append(vertices, newPoint)
			front = append(front, frontEdge{edge.a, index})
			front = append(front, frontEdge{index, edge.b})
			triangles = append(triangles, uint32(edge.a), uint32(edge.b), uint32(index))
		}
	}

	return vertices, triangles
}

func findFrontEdge(front []frontEdge, a, b int) int {
	for i, e := range front {
		if e.a == a && e.b == b {
			return i
		}
	}
	return -1
}

func removeFrontEdge(front []frontEdge, index int) []frontEdge {
	front[index] = front[len(front)-1]
	return front[:len(front)-1]
}

type candidate struct {
	node   int
	factor F
}

func findIntersectionWithFront(start, end int, selected *int, front []frontEdge, vertices []gm.Vec2) *int {
	a, b := vertices[start], vertices[end]
	var newPoint gm.Vec2
	if selected != nil {
		newPoint = vertices[*selected]
	} else {
		newPoint = pointOnNormalBisector(a, b, 1.0)
	}

	var nearby []candidate
	for _, e := range front {
		if selected != nil && *selected == e.a {
			continue
		}
		if e.a != start && e.a != end && isInsideTriangle(a, b, newPoint, vertices[e.a]) {
			factor := shapeFactor(a, b, vertices[e.a])
			nearby = append(nearby, candidate{e.a, 1.0 + factor})
			continue
		}
		if selected != nil && *selected == e.b {
			continue
		}
		c, d := vertices[e.a], vertices[e.b]
		if e.a != start && e.b != start && segmentsIntersect(a, newPoint, c, d) {
			fc := shapeFactor(a, b, c)
			fd := shapeFactor(a, b, d)
			if e.a == end {
				nearby = append(nearby, candidate{e.b, fd})
			} else if fc > fd {
				nearby = append(nearby, candidate{e.a, fc})
			} else {
				nearby = append(nearby, candidate{e.b, fd})
			}
			continue
		}
		if e.a != end && e.b != end && segmentsIntersect(b, newPoint, c, d) {
			fc := shapeFactor(a, b, c)
			fd := shapeFactor(a, b, d)
			if e.b == start {
				nearby = append(nearby, candidate{e.a, fc})
			} else if fc > fd {
				nearby = append(nearby, candidate{e.a, fc})
			} else {
				nearby = append(nearby, candidate{e.b, fd})
			}
		}
	}

	if len(nearby) == 0 {
		return nil
	}

	dedup := dedupCandidatesByNode(nearby)
	best := dedup[0]
	for _, c := range dedup[1:] {
		if c.factor > best.factor {
			best = c
		}
	}
	node := best.node
	return &node
}

// dedupCandidatesByNode keeps, for each distinct node, the entry with the
// highest shape factor (mirroring the sort-by-node-then-dedup-by-node
// sequence of the original implementation).
func dedupCandidatesByNode(candidates []candidate) []candidate {
	best := make(map[int]F, len(candidates))
	order := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if f, ok := best[c.node]; !ok || c.factor > f {
			if !ok {
				order = append(order, c.node)
			}
			best[c.node] = c.factor
		}
	}
	out := make([]candidate, len(order))
	for i, n := range order {
		out[i] = candidate{n, best[n]}
	}
	return out
}

func pointOnNormalBisector(a, b gm.Vec2, ratio F) gm.Vec2 {
	center := a.Add(b).Scale(0.5)
	displace := b.Sub(a).Perp()
	if displace.Length() < minGridSize {
		displace = displace.Normalize().Scale(0.01)
	}
	return center.Add(displace.Scale(ratio))
}

func segmentsIntersect(a, b, c, d gm.Vec2) bool {
	if math.Min(a.X, b.X) > math.Max(c.X, d.X) ||
		math.Min(c.X, d.X) > math.Max(a.X, b.X) ||
		math.Min(a.Y, b.Y) > math.Max(c.Y, d.Y) ||
		math.Min(c.Y, d.Y) > math.Max(a.Y, b.Y) {
		return false
	}
	ac := c.Sub(a)
	bc := c.Sub(b)
	ad := d.Sub(a)
	bd := d.Sub(b)
	if ac.PerpDot(ad)*bd.PerpDot(bc) < 0 {
		return false
	}
	if ac.PerpDot(bc)*bd.PerpDot(ad) < 0 {
		return false
	}
	return true
}

func shapeFactor(a, b, c gm.Vec2) F {
	ab := b.Sub(a)
	ac := c.Sub(a)
	bc := c.Sub(b)
	return ab.PerpDot(ac) / (ab.LengthSquared() + ac.LengthSquared() + bc.LengthSquared())
}
