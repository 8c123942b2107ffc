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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ordmap/ordmap/internal/pnode"
	"github.com/go-ordmap/ordmap/internal/version"
)

func TestSingleModeLatestDepthWins(t *testing.T) {
	idx := NewIndex[string, int](Single)
	n1 := pnode.New("a", 1, idx.NeighborFactory())
	n2 := pnode.New("a", 2, idx.NeighborFactory())

	idx.Update("a", 0, version.Root(), n1)
	idx.Update("a", 1, version.Root(), n2)

	got, ok := idx.Lookup("a", 1, version.Root())
	require.True(t, ok)
	require.Equal(t, 2, got.Value)

	// A read pinned at depth 0 still sees the original binding.
	got, ok = idx.Lookup("a", 0, version.Root())
	require.True(t, ok)
	require.Equal(t, 1, got.Value)
}

func TestSingleModeOrphanIsFilteredOut(t *testing.T) {
	idx := NewIndex[string, int](Single)
	tomb := pnode.NewOrphan[string, int]("a", idx.NeighborFactory())
	idx.Update("a", 0, version.Root(), tomb)

	_, ok := idx.Lookup("a", 0, version.Root())
	require.False(t, ok)
}

func TestMultiwayModeSiblingsDoNotSeeEachOther(t *testing.T) {
	idx := NewIndex[string, int](Multiway)
	root := version.Root()
	left := root.Child(0)
	right := root.Child(1)

	nLeft := pnode.New("a", 10, idx.NeighborFactory())
	nRight := pnode.New("a", 20, idx.NeighborFactory())

	// Both siblings fork from the root at depth 1.
	idx.Update("a", 1, left, nLeft)
	idx.Update("a", 1, right, nRight)

	got, ok := idx.Lookup("a", 1, left)
	require.True(t, ok)
	require.Equal(t, 10, got.Value)

	got, ok = idx.Lookup("a", 1, right)
	require.True(t, ok)
	require.Equal(t, 20, got.Value)
}

func TestMultiwayModeDescendantSeesAncestorBinding(t *testing.T) {
	idx := NewIndex[string, int](Multiway)
	root := version.Root()
	child := root.Child(0)
	grandchild := child.Child(0)

	n := pnode.New("a", 99, idx.NeighborFactory())
	idx.Update("a", 1, child, n)

	got, ok := idx.Lookup("a", 2, grandchild)
	require.True(t, ok)
	require.Equal(t, 99, got.Value)
}

func TestMultiwayReachableVersionsTracksBindings(t *testing.T) {
	idx := NewIndex[string, int](Multiway)
	root := version.Root()
	idx.Update("a", 0, root, pnode.New("a", 1, idx.NeighborFactory()))
	idx.Update("a", 1, root.Child(0), pnode.New("a", 2, idx.NeighborFactory()))

	versions := idx.ReachableVersions("a")
	require.ElementsMatch(t, []string{root.Key(), root.Child(0).Key()}, versions)
}

func TestLightweightModeOverwritesInPlace(t *testing.T) {
	idx := NewIndex[string, int](Lightweight)
	n1 := pnode.New("a", 1, idx.NeighborFactory())
	n2 := pnode.New("a", 2, idx.NeighborFactory())

	idx.Update("a", 0, version.Root(), n1)
	idx.Update("a", 0, version.Root(), n2)

	got, ok := idx.Lookup("a", 0, version.Root())
	require.True(t, ok)
	require.Equal(t, 2, got.Value)
}

func TestLookupUnknownKey(t *testing.T) {
	idx := NewIndex[string, int](Single)
	_, ok := idx.Lookup("missing", 0, version.Root())
	require.False(t, ok)
}
