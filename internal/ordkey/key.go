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

// Package ordkey defines the key bound shared by every layer of the engine.
package ordkey

import "golang.org/x/exp/constraints"

// Key restricts map keys to the primitives the spec allows: strings or
// integers of any width. It is the sole type parameter bound shared by the
// ordered-link primitive, the heap index, the node graph and the map
// façade, so that a key accepted at the public API is accepted everywhere
// underneath it.
type Key interface {
	constraints.Integer | ~string
}
