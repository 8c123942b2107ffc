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

package ordjson_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ordmap/ordmap"
	"github.com/go-ordmap/ordmap/ordjson"
)

func TestRoundTripPreservesOrderAndKeyPropName(t *testing.T) {
	m, err := ordmap.New(ordmap.Config[int, string]{
		Mode:        ordmap.ModeMultiway,
		KeyPropName: "id",
		InitialItems: []ordmap.Item[int, string]{
			{Key: 1, Value: "a"},
			{Key: 2, Value: "b"},
			{Key: 3, Value: "c"},
		},
	})
	require.NoError(t, err)

	blob, err := ordjson.Encode[int, string](m)
	require.NoError(t, err)
	require.Contains(t, blob, `"keyPropName":"id"`)

	rebuilt, err := ordjson.Decode[int, string](blob, ordmap.ModeMultiway)
	require.NoError(t, err)
	require.Equal(t, "id", rebuilt.KeyPropName())

	want, err := ordmap.KeysValues[int, string](m)
	require.NoError(t, err)
	got, err := ordmap.KeysValues[int, string](rebuilt)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := ordjson.Decode[int, string]("{not json", ordmap.ModeMultiway)
	require.Error(t, err)
}
