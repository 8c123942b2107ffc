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

// Package heap implements the heap index (spec §4.2): the process-internal
// structure shared by every map descended from one root (append-only in
// single and multiway mode, overwritten in lightweight mode), that
// answers "which node is current for (key, depth, version)". It plays the
// role the teacher's triedb/pathdb/lookup.go and layertree.go play for trie
// nodes, generalized from a single state-root lineage to three selectable
// branching disciplines.
package heap

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/go-ordmap/ordmap/internal/ordkey"
	"github.com/go-ordmap/ordmap/internal/pnode"
	"github.com/go-ordmap/ordmap/internal/version"
)

// Mode selects which branching discipline a map and everything forked from
// it obeys. It is set once, at root construction, and never changes.
type Mode int

const (
	Single Mode = iota + 1
	Multiway
	Lightweight
)

// Index is the heap index. A key's current node is resolved by delegating to
// a pnode.Neighbors value exactly like a node resolves a neighbor: both ask
// "which node is visible from (depth, version)", so the same three
// mode-specific implementations serve both roles.
type Index[K ordkey.Key, V any] struct {
	mode    Mode
	entries map[K]pnode.Neighbors[K, V]

	// reachable tracks, per key and for multiway mode only, every version
	// marker ever bound. It is a best-effort bookkeeping aid for a future
	// pruning pass (spec §9 Design Notes) to consult instead of re-deriving
	// reachability from the full layer tree; it is never read by Lookup.
	reachable map[K]mapset.Set[string]
}

// NewIndex creates an empty heap index for the given mode.
func NewIndex[K ordkey.Key, V any](mode Mode) *Index[K, V] {
	return &Index[K, V]{
		mode:      mode,
		entries:   make(map[K]pnode.Neighbors[K, V]),
		reachable: make(map[K]mapset.Set[string]),
	}
}

// Mode reports the branching discipline this index was built for.
func (idx *Index[K, V]) Mode() Mode { return idx.mode }

// NeighborFactory returns the constructor every node created against this
// index must use for its Prev/Next stores, so the whole node graph stays on
// the same mode-specific dispatch as the index itself.
func (idx *Index[K, V]) NeighborFactory() pnode.NeighborFactory[K, V] {
	switch idx.mode {
	case Multiway:
		return newMultiwayNeighbors[K, V]
	case Lightweight:
		return newLightweightNeighbors[K, V]
	default:
		return newSingleNeighbors[K, V]
	}
}

// Update records node as current for key, visible from (depth, ver) onward.
// In single and multiway mode it never removes a binding made at an older
// depth: both keep every depth they have ever seen, so an ancestor map whose
// reads are still in flight keeps resolving to the node it always has. In
// lightweight mode the new node replaces the key's previous binding.
func (idx *Index[K, V]) Update(key K, depth uint64, ver version.Path, node *pnode.Node[K, V]) {
	entry, ok := idx.entries[key]
	if !ok {
		entry = idx.NeighborFactory()()
		idx.entries[key] = entry
	}
	entry.Bind(depth, ver, node)

	if idx.mode == Multiway {
		set, ok := idx.reachable[key]
		if !ok {
			set = mapset.NewThreadUnsafeSet[string]()
			idx.reachable[key] = set
		}
		set.Add(ver.Key())
	}
}

// Lookup returns the live node for key as seen from (depth, ver), filtering
// out orphan tombstones per spec §4.2's lookup contract.
func (idx *Index[K, V]) Lookup(key K, depth uint64, ver version.Path) (*pnode.Node[K, V], bool) {
	entry, ok := idx.entries[key]
	if !ok {
		return nil, false
	}
	node, ok := entry.Resolve(depth, ver)
	if !ok || node.Orphan {
		return nil, false
	}
	return node, true
}

// ReachableVersions reports every version marker ever bound for key. It is a
// diagnostic only, exposed for a future multiway pruning pass; single and
// lightweight mode never populate it.
func (idx *Index[K, V]) ReachableVersions(key K) []string {
	set, ok := idx.reachable[key]
	if !ok {
		return nil
	}
	return set.ToSlice()
}
