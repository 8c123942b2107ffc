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

package pnode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ordmap/ordmap/internal/pnode"
	"github.com/go-ordmap/ordmap/internal/version"
)

// stubNeighbors is the simplest possible Neighbors implementation: it
// remembers only the last bound node, regardless of coordinate. It exists
// to exercise Node/NeighborFactory wiring independent of any real mode.
type stubNeighbors struct {
	bound *pnode.Node[string, int]
}

func (s *stubNeighbors) Bind(_ uint64, _ version.Path, next *pnode.Node[string, int]) {
	s.bound = next
}

func (s *stubNeighbors) Resolve(_ uint64, _ version.Path) (*pnode.Node[string, int], bool) {
	return s.bound, s.bound != nil
}

func newStub() pnode.Neighbors[string, int] { return &stubNeighbors{} }

func TestNewNodeHoldsKeyAndValue(t *testing.T) {
	n := pnode.New("a", 1, newStub)
	require.Equal(t, "a", n.Key)
	require.Equal(t, 1, n.Value)
	require.False(t, n.Orphan)
}

func TestNewOrphanCarriesZeroValue(t *testing.T) {
	n := pnode.NewOrphan[string, int]("a", newStub)
	require.Equal(t, "a", n.Key)
	require.Equal(t, 0, n.Value)
	require.True(t, n.Orphan)
}

func TestBindRoundTripsThroughFactory(t *testing.T) {
	a := pnode.New("a", 1, newStub)
	b := pnode.New("b", 2, newStub)

	a.Next.Bind(0, version.Root(), b)
	got, ok := a.Next.Resolve(0, version.Root())
	require.True(t, ok)
	require.Same(t, b, got)
}
