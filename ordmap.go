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

// Package ordmap implements a persistent, insertion-ordered map with
// structural sharing across mutations. Every mutation returns a new logical
// version that shares unchanged state with its ancestors; the three
// selectable modes (Single, Multiway, Lightweight) trade branching freedom
// against lookup cost, the same way the teacher's triedb/pathdb layer tree
// trades flattening cost against history depth.
package ordmap

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/go-ordmap/ordmap/internal/heap"
	"github.com/go-ordmap/ordmap/internal/ordkey"
	"github.com/go-ordmap/ordmap/internal/ordlog"
	"github.com/go-ordmap/ordmap/internal/pnode"
	"github.com/go-ordmap/ordmap/internal/version"
)

// Mode selects the branching discipline of a map and everything forked from
// it. It re-exports internal/heap's mode constants at the package boundary.
type Mode = heap.Mode

const (
	ModeSingle      = heap.Single
	ModeMultiway    = heap.Multiway
	ModeLightweight = heap.Lightweight
)

// Item is a single key/value pair, the Go-native replacement for the
// source's duck-typed object shapes (see DESIGN.md for the rationale): K is
// always the map's key type and Value is whatever payload the caller stores.
type Item[K ordkey.Key, V comparable] struct {
	Key   K
	Value V
}

// Config configures a new root map.
type Config[K ordkey.Key, V comparable] struct {
	InitialItems []Item[K, V]
	KeyPropName  string // carried through for JSON round-tripping only; see ordjson
	Mode         Mode
}

// Map is a persistent, insertion-ordered map. The zero value is not usable;
// construct one with New. A Map is never mutated by user code — every
// operation either returns the receiver unchanged or a new Map — but the
// engine mutates a handful of unexported bookkeeping fields (children,
// mutated) on a map after it has been returned to the caller, exactly the
// way go-ethereum's diffLayer keeps an internal stale flag.
type Map[K ordkey.Key, V comparable] struct {
	heap        *heap.Index[K, V]
	depth       uint64
	ver         version.Path
	head        *pnode.Node[K, V]
	tail        *pnode.Node[K, V]
	length      int
	keyPropName string
	mode        Mode
	ancestor    *Map[K, V]
	change      Change[K, V]

	children uint64 // number of times fork() has run against this map (multiway only)
	mutated  bool    // true once a mutation on this map has produced a different map
}

// New constructs a root map. An unrecognized Mode is replaced with
// ModeMultiway without returning an error; the substitution is logged as a
// warning.
func New[K ordkey.Key, V comparable](cfg Config[K, V]) (*Map[K, V], error) {
	mode := cfg.Mode
	switch mode {
	case heap.Single, heap.Multiway, heap.Lightweight:
	default:
		ordlog.Warn("unrecognized mode, substituting default", "requested", int(cfg.Mode))
		mode = heap.Multiway
	}
	keyPropName := cfg.KeyPropName
	if keyPropName == "" {
		keyPropName = "id"
	}

	root := &Map[K, V]{
		heap:        heap.NewIndex[K, V](mode),
		ver:         version.Root(),
		keyPropName: keyPropName,
		mode:        mode,
	}
	if len(cfg.InitialItems) == 0 {
		return root, nil
	}
	return root.Set(cfg.InitialItems, false)
}

// Mode reports the map's branching discipline.
func (m *Map[K, V]) Mode() Mode { return m.mode }

// KeyPropName reports the property name used when round-tripping through
// ordjson.
func (m *Map[K, V]) KeyPropName() string { return m.keyPropName }

// Ancestor returns the map this one was forked from, or nil for a root.
func (m *Map[K, V]) Ancestor() *Map[K, V] { return m.ancestor }

// Change returns the change record attached by the mutation that produced m.
// A root map's Change has Kind ChangeNone.
func (m *Map[K, V]) Change() Change[K, V] { return m.change }

// ordmapTag is the unforgeable marker IsMap probes for.
func (m *Map[K, V]) ordmapTag() bool { return true }

type tagged interface{ ordmapTag() bool }

// IsMap reports whether v is an *ordmap.Map of any key/value type.
func IsMap(v any) bool {
	t, ok := v.(tagged)
	return ok && t.ordmapTag()
}

// String gives a compact, single-line summary suitable for logging.
func (m *Map[K, V]) String() string {
	return fmt.Sprintf("Map(mode=%d depth=%d length=%d)", m.mode, m.depth, m.length)
}

// Dump renders every key/value pair in order with go-spew, for tests and
// debugging — never on a hot path.
func (m *Map[K, V]) Dump() (string, error) {
	items, err := KeysValues[K, V](m)
	if err != nil {
		return "", err
	}
	return spew.Sdump(items), nil
}
