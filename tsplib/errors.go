// SPDX-License-Identifier: MIT

package tsplib

import (
	"errors"
	"fmt"
)

// ErrMalformedInstance is returned (wrapped with line context) when the input
// violates the grammar: a required field missing when a data section starts,
// a non-numeric token, a dimension/section mismatch, a second data section or
// no data section at all.
var ErrMalformedInstance = errors.New("tsplib: malformed instance")

// malformedf wraps ErrMalformedInstance with the 1-based line number and a message.
func malformedf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInstance, line, fmt.Sprintf(format, args...))
}
