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

package linkmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[K comparable, V any](m *Map[K, V]) []K {
	var keys []K
	m.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func TestAppendOrder(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "a", false)
	m.Set(2, "b", false)
	m.Set(3, "c", false)
	require.Equal(t, []int{1, 2, 3}, collect(m))
}

func TestPrependOrder(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "a", false)
	m.Set(2, "b", false)
	m.Set(0, "z", true)
	require.Equal(t, []int{0, 1, 2}, collect(m))
}

func TestSetExistingKeyKeepsPosition(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "a", false)
	m.Set(2, "b", false)
	m.Set(1, "updated", false)

	require.Equal(t, []int{1, 2}, collect(m))
	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "updated", v)
}

func TestRemoveHeadMiddleTail(t *testing.T) {
	m := New[int, string]()
	for i := 1; i <= 4; i++ {
		m.Set(i, "v", false)
	}
	require.NoError(t, m.Remove(1))
	require.Equal(t, []int{2, 3, 4}, collect(m))

	require.NoError(t, m.Remove(3))
	require.Equal(t, []int{2, 4}, collect(m))

	require.NoError(t, m.Remove(4))
	require.Equal(t, []int{2}, collect(m))

	require.NoError(t, m.Remove(2))
	require.Empty(t, collect(m))
}

func TestRemoveUnknownKey(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "a", false)
	require.ErrorIs(t, m.Remove(2), ErrUnknownKey)
}

func TestForEachReverse(t *testing.T) {
	m := New[int, string]()
	for i := 1; i <= 3; i++ {
		m.Set(i, "v", false)
	}
	var keys []int
	m.ForEachReverse(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []int{3, 2, 1}, keys)
}

func TestForEachEarlyStop(t *testing.T) {
	m := New[int, string]()
	for i := 1; i <= 5; i++ {
		m.Set(i, "v", false)
	}
	var keys []int
	m.ForEach(func(k int, _ string) bool {
		keys = append(keys, k)
		return k != 2
	})
	require.Equal(t, []int{1, 2}, keys)
}

func TestHead(t *testing.T) {
	m := New[int, string]()
	_, _, ok := m.Head()
	require.False(t, ok)

	m.Set(5, "v", false)
	k, v, ok := m.Head()
	require.True(t, ok)
	require.Equal(t, 5, k)
	require.Equal(t, "v", v)
}
