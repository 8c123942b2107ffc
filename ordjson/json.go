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

// Package ordjson is the JSON collaborator the core declares but does not
// implement (spec §6): textual round-tripping of an ordmap.Map, external to
// the structural-sharing engine itself.
package ordjson

import (
	"encoding/json"
	"fmt"

	"github.com/go-ordmap/ordmap"
	"github.com/go-ordmap/ordmap/internal/ordkey"
)

// entry is the wire shape of one item.
type entry[K ordkey.Key, V comparable] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// document is the wire shape of a whole map: {"keyPropName": ..., "keysValues": [...]}.
type document[K ordkey.Key, V comparable] struct {
	KeyPropName string       `json:"keyPropName"`
	KeysValues  []entry[K, V] `json:"keysValues"`
}

// Encode renders m as the wire document described in spec §6.
func Encode[K ordkey.Key, V comparable](m *ordmap.Map[K, V]) (string, error) {
	items, err := ordmap.KeysValues[K, V](m)
	if err != nil {
		return "", fmt.Errorf("ordjson: encode: %w", err)
	}
	doc := document[K, V]{KeyPropName: m.KeyPropName()}
	doc.KeysValues = make([]entry[K, V], len(items))
	for i, item := range items {
		doc.KeysValues[i] = entry[K, V]{Key: item.Key, Value: item.Value}
	}
	blob, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("ordjson: encode: %w", err)
	}
	return string(blob), nil
}

// Decode rebuilds a map of the given mode from a document produced by
// Encode, preserving item order.
func Decode[K ordkey.Key, V comparable](blob string, mode ordmap.Mode) (*ordmap.Map[K, V], error) {
	var doc document[K, V]
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return nil, fmt.Errorf("ordjson: decode: %w", err)
	}
	items := make([]ordmap.Item[K, V], len(doc.KeysValues))
	for i, e := range doc.KeysValues {
		items[i] = ordmap.Item[K, V]{Key: e.Key, Value: e.Value}
	}
	m, err := ordmap.New(ordmap.Config[K, V]{
		InitialItems: items,
		KeyPropName:  doc.KeyPropName,
		Mode:         mode,
	})
	if err != nil {
		return nil, fmt.Errorf("ordjson: decode: %w", err)
	}
	return m, nil
}
