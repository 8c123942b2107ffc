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
	"fmt"

	"github.com/go-ordmap/ordmap/internal/ordkey"
)

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if err := m.checkReadGate("get"); err != nil {
		return zero, false, err
	}
	node, ok := m.heap.Lookup(key, m.depth, m.ver)
	if !ok {
		return zero, false, nil
	}
	return node.Value, true, nil
}

// First returns the head item, if the map is non-empty.
func (m *Map[K, V]) First() (Item[K, V], bool, error) {
	if err := m.checkReadGate("first"); err != nil {
		return Item[K, V]{}, false, err
	}
	if m.head == nil {
		return Item[K, V]{}, false, nil
	}
	return Item[K, V]{Key: m.head.Key, Value: m.head.Value}, true, nil
}

// Last returns the tail item, if the map is non-empty.
func (m *Map[K, V]) Last() (Item[K, V], bool, error) {
	if err := m.checkReadGate("last"); err != nil {
		return Item[K, V]{}, false, err
	}
	if m.tail == nil {
		return Item[K, V]{}, false, nil
	}
	return Item[K, V]{Key: m.tail.Key, Value: m.tail.Value}, true, nil
}

// IsEmpty reports whether the map holds no items.
func (m *Map[K, V]) IsEmpty() (bool, error) {
	if err := m.checkReadGate("isEmpty"); err != nil {
		return false, err
	}
	return m.length == 0, nil
}

// Len reports the number of items in the map.
func (m *Map[K, V]) Len() (int, error) {
	if err := m.checkReadGate("len"); err != nil {
		return 0, err
	}
	return m.length, nil
}

// ForEach walks items head to tail. fn returning false aborts the walk.
func (m *Map[K, V]) ForEach(fn func(item Item[K, V], index int) bool) error {
	return m.walk(fn, false)
}

// ForEachReversed walks items tail to head. fn returning false aborts the
// walk.
func (m *Map[K, V]) ForEachReversed(fn func(item Item[K, V], index int) bool) error {
	return m.walk(fn, true)
}

func (m *Map[K, V]) walk(fn func(Item[K, V], int) bool, reversed bool) error {
	if err := m.checkReadGate("forEach"); err != nil {
		return err
	}
	start, dir := m.head, dirNext
	if reversed {
		start, dir = m.tail, dirPrev
	}
	index := 0
	for n := start; n != nil; index++ {
		if !fn(Item[K, V]{Key: n.Key, Value: n.Value}, index) {
			return nil
		}
		next, ok := m.findNeighbor(n, dir)
		if !ok {
			return nil
		}
		n = next
	}
	return nil
}

// RangeBefore collects up to max items ending at (and, if inclusive, ending
// with) key, walking backward from it, returned in forward order. It
// returns an empty slice if key is absent or max <= 0.
func (m *Map[K, V]) RangeBefore(key K, max int, inclusive bool) ([]Item[K, V], error) {
	if err := m.checkReadGate("rangeBefore"); err != nil {
		return nil, err
	}
	node, ok := m.heap.Lookup(key, m.depth, m.ver)
	if !ok || max <= 0 {
		return nil, nil
	}
	cur := node
	if !inclusive {
		prev, ok := m.findNeighbor(cur, dirPrev)
		if !ok {
			return nil, nil
		}
		cur = prev
	}

	var collected []Item[K, V]
	for cur != nil && len(collected) < max {
		collected = append(collected, Item[K, V]{Key: cur.Key, Value: cur.Value})
		prev, ok := m.findNeighbor(cur, dirPrev)
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected, nil
}

// RangeAfter collects up to max items starting at (and, if inclusive,
// starting with) key, walking forward from it.
func (m *Map[K, V]) RangeAfter(key K, max int, inclusive bool) ([]Item[K, V], error) {
	if err := m.checkReadGate("rangeAfter"); err != nil {
		return nil, err
	}
	node, ok := m.heap.Lookup(key, m.depth, m.ver)
	if !ok || max <= 0 {
		return nil, nil
	}
	cur := node
	if !inclusive {
		next, ok := m.findNeighbor(cur, dirNext)
		if !ok {
			return nil, nil
		}
		cur = next
	}

	var collected []Item[K, V]
	for cur != nil && len(collected) < max {
		collected = append(collected, Item[K, V]{Key: cur.Key, Value: cur.Value})
		next, ok := m.findNeighbor(cur, dirNext)
		if !ok {
			break
		}
		cur = next
	}
	return collected, nil
}

// Keys returns every key in order.
func Keys[K ordkey.Key, V comparable](m *Map[K, V]) ([]K, error) {
	var keys []K
	err := m.ForEach(func(item Item[K, V], _ int) bool {
		keys = append(keys, item.Key)
		return true
	})
	return keys, err
}

// Values returns every value in order.
func Values[K ordkey.Key, V comparable](m *Map[K, V]) ([]V, error) {
	var values []V
	err := m.ForEach(func(item Item[K, V], _ int) bool {
		values = append(values, item.Value)
		return true
	})
	return values, err
}

// KeysValues returns every item in order.
func KeysValues[K ordkey.Key, V comparable](m *Map[K, V]) ([]Item[K, V], error) {
	var items []Item[K, V]
	err := m.ForEach(func(item Item[K, V], _ int) bool {
		items = append(items, item)
		return true
	})
	return items, err
}

// MapFn projects every item through fn, in order.
func MapFn[K ordkey.Key, V comparable, R any](m *Map[K, V], fn func(item Item[K, V], index int) R) ([]R, error) {
	var out []R
	err := m.ForEach(func(item Item[K, V], index int) bool {
		out = append(out, fn(item, index))
		return true
	})
	return out, err
}

// Filter returns every item for which fn returns true, in order.
func Filter[K ordkey.Key, V comparable](m *Map[K, V], fn func(item Item[K, V], index int) bool) ([]Item[K, V], error) {
	var out []Item[K, V]
	err := m.ForEach(func(item Item[K, V], index int) bool {
		if fn(item, index) {
			out = append(out, item)
		}
		return true
	})
	return out, err
}

// Every reports whether fn holds for every item, short-circuiting on the
// first failure.
func Every[K ordkey.Key, V comparable](m *Map[K, V], fn func(item Item[K, V], index int) bool) (bool, error) {
	result := true
	err := m.ForEach(func(item Item[K, V], index int) bool {
		if !fn(item, index) {
			result = false
			return false
		}
		return true
	})
	return result, err
}

// Some reports whether fn holds for at least one item, short-circuiting on
// the first success.
func Some[K ordkey.Key, V comparable](m *Map[K, V], fn func(item Item[K, V], index int) bool) (bool, error) {
	result := false
	err := m.ForEach(func(item Item[K, V], index int) bool {
		if fn(item, index) {
			result = true
			return false
		}
		return true
	})
	return result, err
}

// Reduce folds fn over every item starting from initial.
func Reduce[K ordkey.Key, V comparable, A any](m *Map[K, V], initial A, fn func(acc A, item Item[K, V], index int) A) (A, error) {
	if err := m.checkReadGate("reduce"); err != nil {
		return initial, err
	}
	acc := initial
	err := m.ForEach(func(item Item[K, V], index int) bool {
		acc = fn(acc, item, index)
		return true
	})
	return acc, err
}

// ReduceValues folds fn over every value with no explicit seed: the first
// value becomes the initial accumulator and fn is applied from the second
// value onward, mirroring Array.prototype.reduce's no-initial-value rule
// (spec §4.4, worked in scenario 8). It is the no-seed counterpart to
// Reduce, which always requires one because its accumulator type A can
// differ from V.
func ReduceValues[K ordkey.Key, V comparable](m *Map[K, V], fn func(acc, value V, index int) V) (V, error) {
	var zero V
	if err := m.checkReadGate("reduce"); err != nil {
		return zero, err
	}
	empty, err := m.IsEmpty()
	if err != nil {
		return zero, err
	}
	if empty {
		return zero, fmt.Errorf("reduce: %w", ErrReduceEmptyNoInitialValue)
	}

	var acc V
	started := false
	err = m.ForEach(func(item Item[K, V], index int) bool {
		if !started {
			acc = item.Value
			started = true
			return true
		}
		acc = fn(acc, item.Value, index)
		return true
	})
	return acc, err
}
