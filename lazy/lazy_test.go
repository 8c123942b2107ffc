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

package lazy_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ordmap/ordmap"
	"github.com/go-ordmap/ordmap/lazy"
)

func TestOnceRunsInitExactlyOnce(t *testing.T) {
	calls := 0
	once := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	require.False(t, once.Ready())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := once.Materialize()
			require.NoError(t, err)
			require.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	require.True(t, once.Ready())
	require.Equal(t, 1, calls)
}

func TestLazyMapReportsLengthWithoutMaterializing(t *testing.T) {
	m := lazy.NewMap(ordmap.Config[int, string]{
		InitialItems: []ordmap.Item[int, string]{
			{Key: 1, Value: "a"},
			{Key: 2, Value: "b"},
		},
		Mode: ordmap.ModeMultiway,
	})

	require.Equal(t, 2, m.Len())
	require.False(t, m.Materialized())

	v, ok, err := m.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.True(t, m.Materialized())
}
