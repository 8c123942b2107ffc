// Copyright 2026 The ordmap Authors
// This file is part of the ordmap library.
//
// The ordmap library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ordmap library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ordmap library. If not, see <http://www.gnu.org/licenses/>.

package ordmap

import (
	"github.com/go-ordmap/ordmap/internal/heap"
	"github.com/go-ordmap/ordmap/internal/ordlog"
	"github.com/go-ordmap/ordmap/internal/pnode"
)

// direction selects which neighbor findNeighbor resolves.
type direction int

const (
	dirPrev direction = iota
	dirNext
)

// fork returns a child map sharing m's heap index, head, tail and length,
// with depth incremented by one and ancestor set to m. In multiway mode the
// child's version extends m's with the next unused child index; single and
// lightweight modes never branch, so they share m's (always-root) version
// unchanged.
func (m *Map[K, V]) fork() *Map[K, V] {
	child := &Map[K, V]{
		heap:        m.heap,
		depth:       m.depth + 1,
		keyPropName: m.keyPropName,
		mode:        m.mode,
		head:        m.head,
		tail:        m.tail,
		length:      m.length,
		ancestor:    m,
	}
	if m.mode == heap.Multiway {
		index := m.children
		m.children++
		child.ver = m.ver.Child(int(index))
	} else {
		child.ver = m.ver
	}
	ordlog.Debug("forked map", "mode", int(m.mode), "fromDepth", m.depth, "toDepth", child.depth)
	return child
}

// bind records the prev/next relationship between two nodes as visible from
// m onward (spec §4.3's bind operation). m should be the map currently being
// mutated — almost always a just-forked child — never an ancestor whose own
// coordinates must stay untouched by this batch's writes.
func (m *Map[K, V]) bind(prev, next *pnode.Node[K, V]) {
	prev.Next.Bind(m.depth, m.ver, next)
	next.Prev.Bind(m.depth, m.ver, prev)
}

// findNeighbor resolves the neighbor of from in the given direction, as seen
// from m's (depth, version) coordinates. It returns false without consulting
// the neighbor store at all when from is m's own head (going prev) or tail
// (going next) — those are definitionally boundaries, regardless of what a
// stale neighbor entry might say.
func (m *Map[K, V]) findNeighbor(from *pnode.Node[K, V], dir direction) (*pnode.Node[K, V], bool) {
	switch dir {
	case dirPrev:
		if from == m.head {
			return nil, false
		}
		return from.Prev.Resolve(m.depth, m.ver)
	default:
		if from == m.tail {
			return nil, false
		}
		return from.Next.Resolve(m.depth, m.ver)
	}
}
