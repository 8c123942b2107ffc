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

// Package ordlog is a thin structured-logging wrapper, in the same
// message-plus-key/value-pairs style as the teacher's log package
// (log.Debug("Pruned state history", "items", pruned, "tailid", oldest)),
// built on log/slog instead of go-ethereum's own logger. It is used sparingly,
// at fork points and when an unrecognized mode is substituted, never on the
// per-element read path.
package ordlog

import (
	"log/slog"
	"os"
)

var root = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// SetHandler replaces the destination every subsequent call logs to, for
// example to route log output into a buffer instead of stderr.
func SetHandler(h slog.Handler) { root = slog.New(h) }

// Debug logs a fork-on-write event at debug level.
func Debug(msg string, kv ...any) { root.Debug(msg, kv...) }

// Warn logs a recoverable anomaly, such as a mode default substitution.
func Warn(msg string, kv ...any) { root.Warn(msg, kv...) }
