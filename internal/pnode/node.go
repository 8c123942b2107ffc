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

// Package pnode implements the node graph (spec §4.3): the immutable,
// per-element cells of a persistent map, whose previous/next links are
// depth- (and, in multiway mode, version-) indexed rather than plain
// pointers. It plays the role the teacher's trie/types.Node plays for trie
// nodes — Key/Value stand in for Hash/Blob, Orphan stands in for IsDeleted —
// generalized from a single fixed chain to one chain per live map version.
package pnode

import "github.com/go-ordmap/ordmap/internal/version"

// Neighbors resolves which neighbor node is visible from a given
// (depth, version) coordinate, and records new ones. It is the node-graph
// half of the mode-polymorphism Design Notes call for: single, multiway and
// lightweight modes each get their own implementation, selected once per
// map at construction and shared by every node that map creates.
type Neighbors[K comparable, V any] interface {
	// Bind records next as visible from the given coordinate onward. It is
	// the only mutation ever performed against an existing node.
	Bind(depth uint64, ver version.Path, next *Node[K, V])
	// Resolve returns the neighbor visible from the given coordinate, if any.
	Resolve(depth uint64, ver version.Path) (*Node[K, V], bool)
}

// NeighborFactory builds a fresh, empty Neighbors value for a newly created
// node. Each mode supplies its own factory (see internal/heap's
// Index.NeighborFactory).
type NeighborFactory[K comparable, V any] func() Neighbors[K, V]

// Node is an immutable element of the ordered chain. Its Prev/Next fields
// are never raw pointers except in lightweight mode (spec §4.3): they are
// small dispatch objects that resolve "who is my neighbor, as seen by this
// particular map version" at read time.
type Node[K comparable, V any] struct {
	Key    K
	Value  V
	Orphan bool // true for a tombstone planted by unset/replace (spec §3 Node, I5)

	Prev Neighbors[K, V]
	Next Neighbors[K, V]
}

// New constructs a live node holding key/value, with empty neighbor stores
// produced by factory.
func New[K comparable, V any](key K, value V, factory NeighborFactory[K, V]) *Node[K, V] {
	return &Node[K, V]{
		Key:   key,
		Value: value,
		Prev:  factory(),
		Next:  factory(),
	}
}

// NewOrphan constructs a tombstone node for key: it carries the zero value
// and is always filtered out by heap-index lookups (spec §4.2's "orphan
// flag is set" clause).
func NewOrphan[K comparable, V any](key K, factory NeighborFactory[K, V]) *Node[K, V] {
	var zero V
	n := New(key, zero, factory)
	n.Orphan = true
	return n
}
