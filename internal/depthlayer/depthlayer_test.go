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

package depthlayer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindReturnsNewestDepthNotExceedingMax(t *testing.T) {
	d := New[string]()
	d.Put(0, "zero")
	d.Put(2, "two")
	d.Put(5, "five")

	got, ok := d.Find(3, func(uint64, string) bool { return true })
	require.True(t, ok)
	require.Equal(t, "two", got)
}

func TestFindSkipsDepthsAboveMax(t *testing.T) {
	d := New[string]()
	d.Put(10, "ten")

	_, ok := d.Find(3, func(uint64, string) bool { return true })
	require.False(t, ok)
}

func TestGetExactDepth(t *testing.T) {
	d := New[int]()
	d.Put(4, 40)

	v, ok := d.Get(4)
	require.True(t, ok)
	require.Equal(t, 40, v)

	_, ok = d.Get(5)
	require.False(t, ok)
}

func TestForEachVisitsNewestFirst(t *testing.T) {
	d := New[int]()
	d.Put(1, 1)
	d.Put(2, 2)
	d.Put(3, 3)

	var depths []uint64
	d.ForEach(func(depth uint64, _ int) bool {
		depths = append(depths, depth)
		return true
	})
	require.Equal(t, []uint64{3, 2, 1}, depths)
}
