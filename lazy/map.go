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

package lazy

import (
	"github.com/go-ordmap/ordmap"
	"github.com/go-ordmap/ordmap/internal/ordkey"
)

// Map is the factory's lazy=true mode (spec §6): Len reports the
// pre-computed initial item count without materializing the underlying
// engine; every other operation materializes first.
type Map[K ordkey.Key, V comparable] struct {
	once   *Once[*ordmap.Map[K, V]]
	preLen int
}

// NewMap defers cfg's population until first real use. Len is answerable
// immediately from len(cfg.InitialItems).
func NewMap[K ordkey.Key, V comparable](cfg ordmap.Config[K, V]) *Map[K, V] {
	preLen := len(cfg.InitialItems)
	return &Map[K, V]{
		preLen: preLen,
		once:   New(func() (*ordmap.Map[K, V], error) { return ordmap.New(cfg) }),
	}
}

// Len returns the pre-set item count without materializing.
func (m *Map[K, V]) Len() int { return m.preLen }

// Materialized reports whether the underlying map has been built yet.
func (m *Map[K, V]) Materialized() bool { return m.once.Ready() }

// Get materializes, then looks up key.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var zero V
	real, err := m.once.Materialize()
	if err != nil {
		return zero, false, err
	}
	return real.Get(key)
}

// Set materializes, then mutates. The returned map is the real
// ordmap.Map — there is no benefit to keeping further mutations lazy once
// the engine has been paid for once.
func (m *Map[K, V]) Set(items []ordmap.Item[K, V], prependMissing bool) (*ordmap.Map[K, V], error) {
	real, err := m.once.Materialize()
	if err != nil {
		return nil, err
	}
	return real.Set(items, prependMissing)
}

// KeysValues materializes, then returns every item in order.
func (m *Map[K, V]) KeysValues() ([]ordmap.Item[K, V], error) {
	real, err := m.once.Materialize()
	if err != nil {
		return nil, err
	}
	return ordmap.KeysValues[K, V](real)
}
