/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package diag provides the logging collaborator used throughout the
// indexer: a small interface callers can substitute in tests, plus a
// default implementation that prints to stderr. It carries no other
// diagnostic state — two severity levels cover everything the indexer
// ever reports, so a structured-logging dependency would be dead weight.
package diag

import (
	"fmt"
	"os"
)

// Logger receives non-fatal diagnostics emitted during discovery and
// indexing: I/O and parse failures, skipped raw-identifier modules, and
// crates abandoned for a missing submodule. indexer.Index substitutes
// NopLogger for a nil Logger; discover.Discover does not check and must be
// given a non-nil Logger.
type Logger interface {
	Warning(format string, args ...any)
	Debug(format string, args ...any)
}

// StderrLogger is the default Logger: Warning and Debug both print to
// stderr, prefixed to distinguish severity.
type StderrLogger struct{}

// Warning prints a warning-level diagnostic to stderr.
func (StderrLogger) Warning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Debug prints a debug-level diagnostic to stderr.
func (StderrLogger) Debug(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

// NopLogger discards every message. Useful for tests that don't want
// diagnostic noise in their output.
type NopLogger struct{}

// Warning discards the message.
func (NopLogger) Warning(string, ...any) {}

// Debug discards the message.
func (NopLogger) Debug(string, ...any) {}
