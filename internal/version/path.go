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

// Package version implements branch identifiers for multiway mode.
//
// The source tests ancestry by string-prefix comparison of a separator-joined
// version string. Per spec §9 Design Notes, that carries a separator hazard
// (the separator must stay outside the key alphabet). Path instead represents
// a branch as the explicit sequence of child indices from the root and tests
// ancestry by slice-prefix comparison, which has no alphabet to collide with.
package version

import "strconv"

// Path identifies a node in a multiway map's branch history: the sequence of
// child indices chosen at each fork from the root. The root map's Path is nil.
type Path []int

// Root returns the version of a freshly created root map.
func Root() Path { return nil }

// Child returns a new path extending p with the given child index. p is never
// mutated, so a Path already handed to an ancestor map's nodes stays valid
// after any number of further forks from that same parent.
func (p Path) Child(index int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = index
	return child
}

// IsAncestorOf reports whether p is a prefix of other, i.e. other was forked
// from p or from one of p's descendants.
func (p Path) IsAncestorOf(other Path) bool {
	if len(p) > len(other) {
		return false
	}
	for i, v := range p {
		if other[i] != v {
			return false
		}
	}
	return true
}

// Equal reports whether p and other name the same branch.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i, v := range p {
		if other[i] != v {
			return false
		}
	}
	return true
}

// Key renders p as a comparable string suitable for use as a map key. It is
// an internal encoding only: ancestry is always decided by IsAncestorOf over
// the integer slice, never by inspecting this string.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(p)*3)
	for i, v := range p {
		if i > 0 {
			buf = append(buf, '/')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}
