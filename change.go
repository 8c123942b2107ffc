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

import "github.com/go-ordmap/ordmap/internal/ordkey"

// ChangeKind tags which of the four mutation shapes a Change carries. A
// tagged union over a fixed set of kinds, the way the teacher's
// core/state/stateupdate.go aggregates account deletes and updates under one
// Update rather than an open-ended map.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeSet
	ChangeReplace
	ChangeUnset
	ChangeEmpty
)

// SetChange describes the result of a Set call.
type SetChange[K ordkey.Key, V comparable] struct {
	Inserted       []Item[K, V]
	Updated        []Item[K, V]
	PrependMissing bool
}

// ReplaceChange describes the result of a Replace call.
type ReplaceChange[K ordkey.Key, V comparable] struct {
	OldKey                K
	Key                   K
	Value                 V
	WasInserted           bool
	WasUpdated            bool
	HadExistentNodeForKey bool
	PrependMissing        bool
}

// UnsetChange describes the result of an Unset call.
type UnsetChange[K ordkey.Key, V comparable] struct {
	Key   K
	Value V
}

// Change is attached to the map a mutation returns, and never modified
// afterward. Exactly one of Set, Replace, Unset is non-nil, selected by Kind;
// ChangeEmpty carries none.
type Change[K ordkey.Key, V comparable] struct {
	Kind    ChangeKind
	Set     *SetChange[K, V]
	Replace *ReplaceChange[K, V]
	Unset   *UnsetChange[K, V]
}
