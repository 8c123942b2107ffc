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

// Package depthlayer implements the newest-first, depth-tagged layering used
// by both the heap index and each node's neighbor maps (spec §4.2, §4.3).
// It is built directly on top of linkmap, prepending every write so a plain
// head-to-tail walk always visits the most recently written depth first —
// the same shape as the teacher's lookup.go walking diff layers from the
// head of the chain backward toward the disk layer.
package depthlayer

import "github.com/go-ordmap/ordmap/internal/linkmap"

// DepthLayer records, for a single key, which value is current at each
// depth a map descended from the root ever wrote to that key.
type DepthLayer[T any] struct {
	order *linkmap.Map[uint64, T]
}

// New creates an empty depth layer.
func New[T any]() *DepthLayer[T] {
	return &DepthLayer[T]{order: linkmap.New[uint64, T]()}
}

// Put records value as current at depth. A depth not yet recorded is
// prepended, so it is the first entry a subsequent newest-first walk
// observes; a depth already recorded has its value replaced in place and
// keeps its position.
func (d *DepthLayer[T]) Put(depth uint64, value T) {
	d.order.Set(depth, value, true)
}

// Len returns the number of distinct depths recorded.
func (d *DepthLayer[T]) Len() int { return d.order.Len() }

// Get returns the value recorded at exactly depth, if any.
func (d *DepthLayer[T]) Get(depth uint64) (T, bool) { return d.order.Get(depth) }

// ForEach visits depths newest-first. fn returning false stops the walk.
func (d *DepthLayer[T]) ForEach(fn func(depth uint64, value T) bool) {
	d.order.ForEach(func(depth uint64, value T) bool {
		return fn(depth, value)
	})
}

// Find returns the first entry, scanned newest-depth-first, whose depth does
// not exceed maxDepth and for which accept returns true. It is the
// single-mode lookup contract of spec §4.2 verbatim; multiway mode layers
// the version-stack walk described there on top by storing a version stack
// as T and implementing accept accordingly.
func (d *DepthLayer[T]) Find(maxDepth uint64, accept func(depth uint64, value T) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	d.order.ForEach(func(depth uint64, value T) bool {
		if depth > maxDepth {
			return true
		}
		if accept(depth, value) {
			found, ok = value, true
			return false
		}
		return true
	})
	return found, ok
}
