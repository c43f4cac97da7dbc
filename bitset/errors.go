// SPDX-License-Identifier: MIT

package bitset

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity indicates a capacity outside [0, MaxCapacity].
var ErrInvalidCapacity = errors.New("bitset: invalid capacity")

// ErrInvalidElement indicates an element index < 0 or ≥ capacity.
var ErrInvalidElement = errors.New("bitset: element out of range")

// ErrElementNotFound is returned by Remove when the element is absent.
var ErrElementNotFound = errors.New("bitset: element not found")

// bitsetErrorf attaches method and element context to a sentinel.
func bitsetErrorf(method string, i int, err error) error {
	return fmt.Errorf("BitSet.%s(%d): %w", method, i, err)
}
