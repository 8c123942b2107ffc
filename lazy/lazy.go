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

// Package lazy is the lazy-proxy collaborator the core declares but does not
// implement (spec §6, §9 Design Notes). The source achieves transparent
// one-shot initialization with a runtime proxy; Go has no such facility, so
// per the Design Notes' fallback this folds initialization into an explicit
// Materialize call invoked at the top of every operation — cheap after the
// first call, and collapsing concurrent first touches into one real init via
// singleflight.
package lazy

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Initializer produces the real value on first touch.
type Initializer[T any] func() (T, error)

// Once is a one-shot deferred value: cheap to hold unmaterialized, and safe
// to materialize from more than one goroutine at once even though the
// ordmap.Map it typically wraps is not itself safe for concurrent mutation —
// the race this guards is the first-touch initialization race, not
// subsequent map use.
type Once[T any] struct {
	group singleflight.Group
	init  Initializer[T]

	mu    sync.Mutex
	value T
	ready bool
}

// New creates a deferred value that calls init on first Materialize.
func New[T any](init Initializer[T]) *Once[T] {
	return &Once[T]{init: init}
}

// Materialize returns the real value, calling init the first time and
// caching the result for every call after. An error from init is returned
// and not cached, so the next call runs init again.
func (o *Once[T]) Materialize() (T, error) {
	o.mu.Lock()
	if o.ready {
		v := o.value
		o.mu.Unlock()
		return v, nil
	}
	o.mu.Unlock()

	v, err, _ := o.group.Do("materialize", func() (any, error) {
		o.mu.Lock()
		if o.ready {
			v := o.value
			o.mu.Unlock()
			return v, nil
		}
		o.mu.Unlock()

		val, err := o.init()
		if err != nil {
			return nil, err
		}
		o.mu.Lock()
		o.value, o.ready = val, true
		o.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Ready reports whether init has already run, without triggering it.
func (o *Once[T]) Ready() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ready
}
