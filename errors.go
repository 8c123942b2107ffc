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

package ordmap

import (
	"errors"
	"fmt"

	"github.com/go-ordmap/ordmap/internal/linkmap"
)

// Sentinel errors, in the teacher's errors.New-plus-fmt.Errorf-wrap style
// (compare trie/disk_cache.go's errUnexpectedNode).
var (
	// ErrSingleModeMutationAlreadyOccurred is returned when a single-mode map
	// that has already produced one mutated descendant is mutated again.
	ErrSingleModeMutationAlreadyOccurred = errors.New("ordmap: single-mode map already mutated")

	// ErrLightweightModePostMutationUse is returned by any operation, read or
	// write, on a lightweight-mode map after it has produced a mutated
	// descendant.
	ErrLightweightModePostMutationUse = errors.New("ordmap: lightweight-mode map used after mutation")

	// ErrReduceEmptyNoInitialValue is returned by a no-seed reduce over an
	// empty map.
	ErrReduceEmptyNoInitialValue = errors.New("ordmap: reduce on empty map with no initial value")

	// ErrUnknownKey mirrors the ordered-link primitive's internal removal
	// error. Under correct engine use it should never reach a caller; seeing
	// it indicates an invariant breach in this package, not in user code.
	ErrUnknownKey = linkmap.ErrUnknownKey
)

func gateError(op string, sentinel error) error {
	return fmt.Errorf("%s: %w", op, sentinel)
}
