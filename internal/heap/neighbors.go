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

package heap

import (
	"github.com/go-ordmap/ordmap/internal/depthlayer"
	"github.com/go-ordmap/ordmap/internal/linkmap"
	"github.com/go-ordmap/ordmap/internal/pnode"
	"github.com/go-ordmap/ordmap/internal/version"
)

// The three implementations below satisfy pnode.Neighbors[K, V]. They also
// satisfy this package's own per-key heap-index storage contract, since
// "which node is visible from (depth, version)" is exactly the question
// both a node's Prev/Next links and the heap index's per-key entry answer —
// one dispatch object serves both jobs, selected once per map.

// singleNeighbors implements single mode (spec §4.3): one DepthLayer, no
// version component. There is at most one live branch, so depth alone
// disambiguates.
type singleNeighbors[K comparable, V any] struct {
	layer *depthlayer.DepthLayer[*pnode.Node[K, V]]
}

func newSingleNeighbors[K comparable, V any]() pnode.Neighbors[K, V] {
	return &singleNeighbors[K, V]{layer: depthlayer.New[*pnode.Node[K, V]]()}
}

func (s *singleNeighbors[K, V]) Bind(depth uint64, _ version.Path, next *pnode.Node[K, V]) {
	s.layer.Put(depth, next)
}

func (s *singleNeighbors[K, V]) Resolve(depth uint64, _ version.Path) (*pnode.Node[K, V], bool) {
	return s.layer.Find(depth, func(uint64, *pnode.Node[K, V]) bool { return true })
}

// versionedNode pairs a bound node with the version that wrote it, so a
// multiway stack can test ancestry without consulting anything else.
type versionedNode[K comparable, V any] struct {
	path version.Path
	node *pnode.Node[K, V]
}

// multiwayNeighbors implements multiway mode (spec §4.3): a DepthLayer whose
// entries are themselves ordered-link stacks of (version, node) pairs,
// newest version first. Two sibling forks share the same depth, so depth
// alone no longer disambiguates — the version-ancestry walk breaks the tie.
type multiwayNeighbors[K comparable, V any] struct {
	layer *depthlayer.DepthLayer[*linkmap.Map[string, versionedNode[K, V]]]
}

func newMultiwayNeighbors[K comparable, V any]() pnode.Neighbors[K, V] {
	return &multiwayNeighbors[K, V]{
		layer: depthlayer.New[*linkmap.Map[string, versionedNode[K, V]]](),
	}
}

func (m *multiwayNeighbors[K, V]) Bind(depth uint64, ver version.Path, next *pnode.Node[K, V]) {
	stack, ok := m.layer.Get(depth)
	if !ok {
		stack = linkmap.New[string, versionedNode[K, V]]()
		m.layer.Put(depth, stack)
	}
	stack.Set(ver.Key(), versionedNode[K, V]{path: ver, node: next}, true)
}

func (m *multiwayNeighbors[K, V]) Resolve(depth uint64, ver version.Path) (*pnode.Node[K, V], bool) {
	var (
		found *pnode.Node[K, V]
		ok    bool
	)
	m.layer.ForEach(func(d uint64, stack *linkmap.Map[string, versionedNode[K, V]]) bool {
		if d > depth {
			return true
		}
		stack.ForEach(func(_ string, vn versionedNode[K, V]) bool {
			if !vn.path.IsAncestorOf(ver) {
				return true
			}
			found, ok = vn.node, true
			return false
		})
		return !ok
	})
	return found, ok
}

// lightweightNeighbors implements lightweight mode (spec §4.3): a single raw
// pointer, overwritten in place. There is no history to disambiguate —
// binding a new neighbor makes the previous one unreachable, which is
// exactly the "predecessor unusable after mutation" contract of this mode.
type lightweightNeighbors[K comparable, V any] struct {
	node *pnode.Node[K, V]
}

func newLightweightNeighbors[K comparable, V any]() pnode.Neighbors[K, V] {
	return &lightweightNeighbors[K, V]{}
}

func (l *lightweightNeighbors[K, V]) Bind(_ uint64, _ version.Path, next *pnode.Node[K, V]) {
	l.node = next
}

func (l *lightweightNeighbors[K, V]) Resolve(_ uint64, _ version.Path) (*pnode.Node[K, V], bool) {
	return l.node, l.node != nil
}
