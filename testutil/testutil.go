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

// Package testutil provides randomized item generation for tests, in the
// same seeded-PRNG-printed-on-startup style as the teacher's
// trie/testutil/rand.go, built on gofuzz instead of math/rand directly.
package testutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/gofuzz"

	"github.com/go-ordmap/ordmap"
)

var fuzzer = initFuzzer()

func initFuzzer() *fuzz.Fuzzer {
	var seed [8]byte
	crand.Read(seed[:])
	s := int64(binary.LittleEndian.Uint64(seed[:]))
	fmt.Printf("testutil seed: %x\n", seed)
	return fuzz.New().Seed(s).NilChance(0).NumElements(1, 1)
}

// RandomItems generates n items with distinct sequential keys 0..n-1 and
// fuzz-generated string values, suitable for populating a map whose value
// type is string.
func RandomItems(n int) []ordmap.Item[int, string] {
	items := make([]ordmap.Item[int, string], n)
	for i := 0; i < n; i++ {
		var value string
		fuzzer.Fuzz(&value)
		items[i] = ordmap.Item[int, string]{Key: i, Value: value}
	}
	return items
}

// RandomValue fuzzes a single random string value. It is not checked against
// values already stored in any map, so it may repeat one of them.
func RandomValue() string {
	var value string
	fuzzer.Fuzz(&value)
	return value
}
