// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method name, offending value).
//   • Constructors never panic; option constructors may (programmer error).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter is below the minimum
// for the requested topology (e.g. Cycle(2), Wheel(3)).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete without
// violating the board's invariants (nil constructor, malformed edge list).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPattern indicates that a pattern name could not be parsed by Named.
var ErrUnknownPattern = errors.New("builder: unknown pattern")

// builderErrorf prefixes an error with the constructor name and wraps
// ErrTooFewVertices so callers can match it.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrTooFewVertices)
}
