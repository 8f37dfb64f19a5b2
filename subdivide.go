// seehuhn.de/go/mapproj - adaptive composite map projections
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mapproj

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/projection"
)

// tree is a binary segment tree. Every node covers a projected segment;
// the leaves, read from left to right, form a polyline approximating the
// projected curve.
type tree struct {
	nodes []node
}

type node struct {
	a, b        vec.Vec2
	left, right int // child indices, or -1 for leaves
}

func (t *tree) reset() {
	t.nodes = t.nodes[:0]
}

func (t *tree) leaf(a, b vec.Vec2) int {
	t.nodes = append(t.nodes, node{a: a, b: b, left: -1, right: -1})
	return len(t.nodes) - 1
}

// build subdivides the segment from ca to cb, whose projections are a and
// b. It returns the index of the root node.
func (t *tree) build(r *Renderer, ca, cb projection.Coordinate, a, b vec.Vec2, depth int) int {
	idx := t.leaf(a, b)
	if depth >= r.MaxDepth || isNaN(a) || isNaN(b) || a.Sub(b).Length() < r.Tolerance {
		return idx
	}

	cm := lerp(ca, cb, 0.5)
	m, _ := r.Projection.Forward(cm)
	if isNaN(m) {
		return idx
	}

	am := a.Sub(m).Length()
	mb := m.Sub(b).Length()
	var left, right int
	switch {
	case mb > math.Pow(am, r.MagnitudeMargin):
		// the first half is negligible
		left = t.leaf(a, m)
		right = t.build(r, cm, cb, m, b, depth+1)
	case am > math.Pow(mb, r.MagnitudeMargin):
		left = t.build(r, ca, cm, a, m, depth+1)
		right = t.leaf(m, b)
	default:
		left = t.build(r, ca, cm, a, m, depth+1)
		right = t.build(r, cm, cb, m, b, depth+1)
	}
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// walk calls emit with the end point of every leaf below idx, in order.
func (t *tree) walk(idx int, emit func(vec.Vec2)) {
	n := &t.nodes[idx]
	if n.left < 0 {
		emit(n.b)
		return
	}
	left, right := n.left, n.right
	t.walk(left, emit)
	t.walk(right, emit)
}
