package web

import "errors"

var (
	errNoSolutionWithinBound = errors.New("no solution found within the requested move/time bound")
	errUnknownCategory       = errors.New("unknown scramble category")
)
