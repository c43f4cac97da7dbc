// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, m) is
// below the generator's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf attaches method context to a sentinel.
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
