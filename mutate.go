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
	"github.com/go-ordmap/ordmap/internal/pnode"
	"github.com/go-ordmap/ordmap/internal/version"
)

func identical[V comparable](a, b V) bool { return a == b }

// checkGate enforces the single- and lightweight-mode mutation gates (spec
// §4.4). Multiway always permits mutation. Gate checks run before any fork,
// so a gated call never leaves partial state.
func (m *Map[K, V]) checkGate(op string) error {
	switch m.mode {
	case heap.Single:
		if m.mutated {
			return gateError(op, ErrSingleModeMutationAlreadyOccurred)
		}
	case heap.Lightweight:
		if m.mutated {
			return gateError(op, ErrLightweightModePostMutationUse)
		}
	}
	return nil
}

// checkReadGate enforces the lightweight-mode read lockout: once a
// lightweight map has produced a mutated descendant, every further
// operation on it — including reads — fails.
func (m *Map[K, V]) checkReadGate(op string) error {
	if m.mode == heap.Lightweight && m.mutated {
		return gateError(op, ErrLightweightModePostMutationUse)
	}
	return nil
}

// Set inserts or updates items. Items are deduplicated by key, first
// occurrence winning, before any fork happens. A key absent from m becomes a
// new node, appended after the current tail (or, if prependMissing, spliced
// before the current head); a key present with a different value is
// replaced in place, preserving its position. A key present with an
// identical value contributes nothing. If nothing in items was effectful, m
// itself is returned.
func (m *Map[K, V]) Set(items []Item[K, V], prependMissing bool) (*Map[K, V], error) {
	if err := m.checkGate("set"); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return m, nil
	}

	seen := make(map[K]bool, len(items))
	effective := make([]Item[K, V], 0, len(items))
	for _, item := range items {
		if seen[item.Key] {
			continue
		}
		seen[item.Key] = true
		effective = append(effective, item)
	}

	var (
		child    *Map[K, V]
		inserted []Item[K, V]
		updated  []Item[K, V]

		newHeadFirst, newHeadLast *pnode.Node[K, V]
		newTailFirst, newTailLast *pnode.Node[K, V]
	)

	for _, item := range effective {
		existing, ok := m.heap.Lookup(item.Key, m.depth, m.ver)
		if ok && identical(existing.Value, item.Value) {
			continue
		}
		if child == nil {
			child = m.fork()
		}

		if !ok {
			node := pnode.New(item.Key, item.Value, child.heap.NeighborFactory())
			child.heap.Update(item.Key, child.depth, child.ver, node)
			inserted = append(inserted, item)

			if prependMissing {
				if newHeadFirst == nil {
					newHeadFirst = node
				} else {
					child.bind(newHeadLast, node)
				}
				newHeadLast = node
			} else {
				if newTailFirst == nil {
					newTailFirst = node
				} else {
					child.bind(newTailLast, node)
				}
				newTailLast = node
			}
			continue
		}

		replacement := pnode.New(item.Key, item.Value, child.heap.NeighborFactory())
		child.heap.Update(item.Key, child.depth, child.ver, replacement)
		updated = append(updated, item)
		m.spliceReplacement(child, existing, replacement)
	}

	if child == nil {
		return m, nil
	}

	if newHeadFirst != nil {
		if child.head != nil {
			child.bind(newHeadLast, child.head)
		}
		child.head = newHeadFirst
		if child.tail == nil {
			child.tail = newHeadLast
		}
	}
	if newTailFirst != nil {
		if child.tail != nil {
			child.bind(child.tail, newTailFirst)
		}
		if child.head == nil {
			child.head = newTailFirst
		}
		child.tail = newTailLast
	}

	child.length = m.length + len(inserted)
	child.change = Change[K, V]{Kind: ChangeSet, Set: &SetChange[K, V]{
		Inserted:       inserted,
		Updated:        updated,
		PrependMissing: prependMissing,
	}}
	m.mutated = true
	return child, nil
}

// SetOne is a convenience wrapper for Set with a single item.
func (m *Map[K, V]) SetOne(item Item[K, V], prependMissing bool) (*Map[K, V], error) {
	return m.Set([]Item[K, V]{item}, prependMissing)
}

// spliceReplacement rebinds replacement into the chain position old
// occupied. Old's neighbors are resolved through child, not m: child's
// (depth, version) coordinates see everything m's do plus every bind this
// same batch has already performed, so a neighbor rewritten earlier in the
// batch (because it too was replaced) is seen instead of its stale,
// pre-batch counterpart. child.head/child.tail are consulted for the same
// reason — they track the batch's progress, not just the pre-batch chain.
func (m *Map[K, V]) spliceReplacement(child *Map[K, V], old, replacement *pnode.Node[K, V]) {
	if prev, ok := child.findNeighbor(old, dirPrev); ok {
		child.bind(prev, replacement)
	}
	if next, ok := child.findNeighbor(old, dirNext); ok {
		child.bind(replacement, next)
	}
	if old == child.head {
		child.head = replacement
	}
	if old == child.tail {
		child.tail = replacement
	}
}

// excise splices node out of child's chain, stitching together the
// neighbors it had as seen from child (see spliceReplacement), without
// touching the heap index. Used when node's key has already been rebound to
// something else by this same operation, so planting a tombstone at its key
// would shadow that live binding instead of the one node actually removed.
func (m *Map[K, V]) excise(child *Map[K, V], node *pnode.Node[K, V]) {
	prev, hasPrev := child.findNeighbor(node, dirPrev)
	next, hasNext := child.findNeighbor(node, dirNext)

	switch {
	case hasPrev && hasNext:
		child.bind(prev, next)
	case hasPrev:
		child.tail = prev
	case hasNext:
		child.head = next
	default:
		child.head, child.tail = nil, nil
	}
}

// dropNode removes node from the chain in child (see excise) and plants an
// orphan tombstone at node's key so the heap index reports it absent from
// child onward.
func (m *Map[K, V]) dropNode(child *Map[K, V], node *pnode.Node[K, V]) {
	m.excise(child, node)
	orphan := pnode.NewOrphan[K, V](node.Key, child.heap.NeighborFactory())
	child.heap.Update(node.Key, child.depth, child.ver, orphan)
}

// Replace relocates the value at oldKey to a new item, optionally under a
// new key, preserving position. If oldKey is absent, addMissing controls
// whether item is inserted fresh; see spec §4.4 for the full decision table.
func (m *Map[K, V]) Replace(oldKey K, item Item[K, V], addMissing, prependMissing bool) (*Map[K, V], error) {
	if err := m.checkGate("replace"); err != nil {
		return nil, err
	}

	old, foundOld := m.heap.Lookup(oldKey, m.depth, m.ver)
	if !foundOld {
		return m.replaceMissing(oldKey, item, addMissing, prependMissing)
	}

	if item.Key == oldKey && identical(old.Value, item.Value) {
		return m, nil
	}

	child := m.fork()
	replacement := pnode.New(item.Key, item.Value, child.heap.NeighborFactory())
	child.heap.Update(item.Key, child.depth, child.ver, replacement)
	m.spliceReplacement(child, old, replacement)

	length := m.length
	if item.Key != oldKey {
		orphan := pnode.NewOrphan[K, V](oldKey, child.heap.NeighborFactory())
		child.heap.Update(oldKey, child.depth, child.ver, orphan)

		if existingNew, foundNew := m.heap.Lookup(item.Key, m.depth, m.ver); foundNew && existingNew != old {
			// existingNew's key now belongs to replacement (just bound above);
			// only its old chain position needs removing, not its heap entry.
			m.excise(child, existingNew)
			length--
		}
	}

	child.length = length
	child.change = Change[K, V]{Kind: ChangeReplace, Replace: &ReplaceChange[K, V]{
		OldKey:                oldKey,
		Key:                   item.Key,
		Value:                 item.Value,
		WasUpdated:            true,
		HadExistentNodeForKey: true,
		PrependMissing:        prependMissing,
	}}
	m.mutated = true
	return child, nil
}

// replaceMissing handles Replace when oldKey was not found.
func (m *Map[K, V]) replaceMissing(oldKey K, item Item[K, V], addMissing, prependMissing bool) (*Map[K, V], error) {
	if !addMissing {
		return m, nil
	}

	if existing, ok := m.heap.Lookup(item.Key, m.depth, m.ver); ok {
		if identical(existing.Value, item.Value) {
			return m, nil
		}
		child := m.fork()
		replacement := pnode.New(item.Key, item.Value, child.heap.NeighborFactory())
		child.heap.Update(item.Key, child.depth, child.ver, replacement)
		m.spliceReplacement(child, existing, replacement)

		child.length = m.length
		child.change = Change[K, V]{Kind: ChangeReplace, Replace: &ReplaceChange[K, V]{
			OldKey:                oldKey,
			Key:                   item.Key,
			Value:                 item.Value,
			WasUpdated:            true,
			HadExistentNodeForKey: true,
			PrependMissing:        prependMissing,
		}}
		m.mutated = true
		return child, nil
	}

	child := m.fork()
	node := pnode.New(item.Key, item.Value, child.heap.NeighborFactory())
	child.heap.Update(item.Key, child.depth, child.ver, node)
	if prependMissing {
		if child.head != nil {
			child.bind(node, child.head)
		}
		child.head = node
		if child.tail == nil {
			child.tail = node
		}
	} else {
		if child.tail != nil {
			child.bind(child.tail, node)
		}
		child.tail = node
		if child.head == nil {
			child.head = node
		}
	}

	child.length = m.length + 1
	child.change = Change[K, V]{Kind: ChangeReplace, Replace: &ReplaceChange[K, V]{
		OldKey:         oldKey,
		Key:            item.Key,
		Value:          item.Value,
		WasInserted:    true,
		PrependMissing: prependMissing,
	}}
	m.mutated = true
	return child, nil
}

// Unset removes key, returning m unchanged if key is absent.
func (m *Map[K, V]) Unset(key K) (*Map[K, V], error) {
	if err := m.checkGate("unset"); err != nil {
		return nil, err
	}
	existing, ok := m.heap.Lookup(key, m.depth, m.ver)
	if !ok {
		return m, nil
	}

	child := m.fork()
	m.dropNode(child, existing)
	child.length = m.length - 1
	child.change = Change[K, V]{Kind: ChangeUnset, Unset: &UnsetChange[K, V]{Key: key, Value: existing.Value}}
	m.mutated = true
	return child, nil
}

// UnsetMany folds Unset left over keys: each removal runs on the map the
// previous one returned, so only m's own gate is checked and a chain of
// removals never trips a single-mode gate by itself.
func (m *Map[K, V]) UnsetMany(keys []K) (*Map[K, V], error) {
	current := m
	for _, key := range keys {
		next, err := current.Unset(key)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Empty returns a fresh, empty map sharing keyPropName and mode but starting
// a new heap index, or m itself if m is already empty.
func (m *Map[K, V]) Empty() (*Map[K, V], error) {
	if err := m.checkReadGate("empty"); err != nil {
		return nil, err
	}
	if m.length == 0 {
		return m, nil
	}
	if err := m.checkGate("empty"); err != nil {
		return nil, err
	}

	child := &Map[K, V]{
		heap:        heap.NewIndex[K, V](m.mode),
		depth:       m.depth + 1,
		ver:         version.Root(),
		keyPropName: m.keyPropName,
		mode:        m.mode,
		ancestor:    m,
		change:      Change[K, V]{Kind: ChangeEmpty},
	}
	m.mutated = true
	return child, nil
}
