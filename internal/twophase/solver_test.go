package twophase

import (
	"sync"
	"testing"
	"time"

	"github.com/cube-solver/kociemba/internal/cube"
)

var (
	sharedTable     *DataTable
	sharedTableOnce sync.Once
)

// table lazily builds the full move/pruning table set once per test
// binary run; every full-search test in this package shares it, since
// building it is the expensive part and the tables are read-only.
func table(t *testing.T) *DataTable {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping full two-phase table build in -short mode")
	}
	sharedTableOnce.Do(func() {
		sharedTable = NewDataTable()
	})
	return sharedTable
}

func TestSolverSolvesScrambleA(t *testing.T) {
	dt := table(t)
	scramble, err := cube.ParseScramble("D' R2 L' U2 F R F' D2 R2 F2 B2 U2 R2 F2 U R2 U' R2 D2")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	state := cube.Solved.ApplyMoves(scramble)

	solver := NewSolver(dt, 23, 0)
	solution := solver.Solve(state)
	if solution == nil {
		t.Fatal("expected a solution, got nil")
	}

	solved := state.ApplyMoves(solution.Moves())
	if !solved.Equal(cube.Solved) {
		t.Errorf("applying solution did not reach solved state: %+v", solved)
	}
}

func TestSolverOnAlreadySolved(t *testing.T) {
	dt := table(t)
	solver := NewSolver(dt, 23, 0)
	solution := solver.Solve(cube.Solved)
	if solution == nil {
		t.Fatal("expected a (possibly empty) solution for the solved cube")
	}
	if !solution.IsEmpty() {
		t.Errorf("expected empty solution for solved cube, got %d moves", solution.Len())
	}
}

func TestSolverRespectsTimeout(t *testing.T) {
	dt := table(t)
	scramble, err := cube.ParseScramble("D' R2 L' U2 F R F' D2 R2 F2 B2 U2 R2 F2 U R2 U' R2 D2")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	state := cube.Solved.ApplyMoves(scramble)

	solver := NewSolver(dt, 23, time.Nanosecond)
	// An effectively-zero timeout must return promptly; it may legitimately
	// return nil since no full search completes within a nanosecond.
	start := time.Now()
	_ = solver.Solve(state)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Solve with a 1ns timeout took %v, want it to return promptly", elapsed)
	}
}

func TestGenerateScrambleRoundTrips(t *testing.T) {
	dt := table(t)
	r := newSeededRand(t)
	moves, err := GenerateScramble(dt, CategoryRandom, r, 25)
	if err != nil {
		t.Fatalf("GenerateScramble: %v", err)
	}
	state := cube.Solved.ApplyMoves(moves)
	if state.Equal(cube.Solved) && len(moves) > 0 {
		t.Error("non-empty scramble should not be solved")
	}
	if !state.IsSolvable() {
		t.Error("scrambled state should remain solvable")
	}
	// The same seed yields the same sampled state, which the scramble must
	// reproduce from solved.
	if want := randomStateFor(CategoryRandom, newSeededRand(t)); !state.Equal(want) {
		t.Errorf("scramble reaches %+v, want the sampled state %+v", state, want)
	}
}
