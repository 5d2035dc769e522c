package twophase

import (
	"math/rand"

	"github.com/cube-solver/kociemba/internal/cube"
)

// ScrambleCategory selects which RandomState* generator produces the
// state a scramble is derived from.
type ScrambleCategory int

const (
	CategoryRandom ScrambleCategory = iota
	CategoryCrossSolved
	CategoryF2LSolved
	CategoryOLLSolved
	CategoryOLLCrossSolved
	CategoryCornersSolved
	CategoryEdgesSolved
)

func randomStateFor(category ScrambleCategory, r *rand.Rand) cube.CubieCube {
	switch category {
	case CategoryCrossSolved:
		return cube.RandomStateCrossSolved(r)
	case CategoryF2LSolved:
		return cube.RandomStateF2LSolved(r)
	case CategoryOLLSolved:
		return cube.RandomStateOLLSolved(r)
	case CategoryOLLCrossSolved:
		return cube.RandomStateOLLCrossSolved(r)
	case CategoryCornersSolved:
		return cube.RandomStateCornersSolved(r)
	case CategoryEdgesSolved:
		return cube.RandomStateEdgesSolved(r)
	default:
		return cube.RandomState(r)
	}
}

// GenerateScramble produces a uniformly random scramble of the requested
// category by sampling a random state and inverting its two-phase
// solution: solving the state gives a move list that takes it to solved,
// so applying the reverse of that list, with each move inverted, to the
// solved cube reproduces the original scrambled state.
func GenerateScramble(table *DataTable, category ScrambleCategory, r *rand.Rand, maxLength uint8) ([]cube.Move, error) {
	state := randomStateFor(category, r)
	solver := NewSolver(table, maxLength, 0)
	solution := solver.Solve(state)
	if solution == nil {
		return nil, wrapf(errNoSolutionForScramble, "no solution found within %d moves while generating scramble", maxLength)
	}
	moves := solution.Moves()
	scramble := make([]cube.Move, len(moves))
	for i, m := range moves {
		scramble[len(moves)-1-i] = m.GetInverse()
	}
	return scramble, nil
}
