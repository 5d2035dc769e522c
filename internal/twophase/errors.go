package twophase

import (
	"errors"
	"fmt"
)

// errNoSolutionForScramble signals that GenerateScramble's internal solve
// exhausted its move bound. In practice this never triggers at the
// default bound (25) kewb-cli uses, since random states are rarely more
// than ~20 moves from solved.
var errNoSolutionForScramble = errors.New("no solution found for scramble generation")

func wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
