package twophase

import (
	"time"

	"github.com/cube-solver/kociemba/internal/cube"
)

// DataTable bundles the move and pruning tables the solver needs. It is
// immutable once built and safe to share across concurrent Solver
// instances.
type DataTable struct {
	Move    *MoveTable
	Pruning *PruningTable
}

// NewDataTable builds both tables from scratch. This is the expensive
// one-time cost the `table` command amortizes into a blob on disk.
func NewDataTable() *DataTable {
	mt := NewMoveTable()
	return &DataTable{Move: mt, Pruning: NewPruningTable(mt)}
}

type phase1State struct {
	co, eo, eCombo int
}

func newPhase1State(c cube.CubieCube) phase1State {
	return phase1State{
		co:     cube.COToIndex(c.CO),
		eo:     cube.EOToIndex(c.EO),
		eCombo: cube.EComboToIndex(c.EP),
	}
}

func (s phase1State) isSolved() bool {
	return s.co == 0 && s.eo == 0 && s.eCombo == 0
}

func (s phase1State) next(mt *MoveTable, moveIndex int) phase1State {
	return phase1State{
		co:     int(mt.CO[s.co][moveIndex]),
		eo:     int(mt.EO[s.eo][moveIndex]),
		eCombo: int(mt.ECombo[s.eCombo][moveIndex]),
	}
}

func (s phase1State) prune(pt *PruningTable, depth uint8) bool {
	dCO := pt.COECombo[s.co][s.eCombo]
	dEO := pt.EOECombo[s.eo][s.eCombo]
	bound := dCO
	if dEO > bound {
		bound = dEO
	}
	return bound > depth
}

type phase2State struct {
	cp, udep, eep int
}

func newPhase2State(c cube.CubieCube) phase2State {
	return phase2State{
		cp:   cube.CPToIndex(c.CP),
		udep: cube.UDEPToIndex(c.EP),
		eep:  cube.EEPToIndex(c.EP),
	}
}

func (s phase2State) isSolved() bool {
	return s.cp == 0 && s.udep == 0 && s.eep == 0
}

func (s phase2State) next(mt *MoveTable, moveIndex int) phase2State {
	return phase2State{
		cp:   int(mt.CP[s.cp][moveIndex]),
		udep: int(mt.UDEP[s.udep][moveIndex]),
		eep:  int(mt.EEP[s.eep][moveIndex]),
	}
}

func (s phase2State) prune(pt *PruningTable, depth uint8) bool {
	dCP := pt.CPEEP[s.cp][s.eep]
	dUD := pt.UDEPEEP[s.udep][s.eep]
	bound := dCP
	if dUD > bound {
		bound = dUD
	}
	return bound > depth
}

// Solution is a two-phase solve broken into its phase-1 and phase-2 move
// sequences. The full solution is Phase1 followed by Phase2.
type Solution struct {
	Phase1 []cube.Move
	Phase2 []cube.Move
}

// Len returns the total move count.
func (s Solution) Len() int { return len(s.Phase1) + len(s.Phase2) }

// IsEmpty reports whether the solution has zero moves.
func (s Solution) IsEmpty() bool { return s.Len() == 0 }

// Moves returns the full move list, phase 1 then phase 2.
func (s Solution) Moves() []cube.Move {
	all := make([]cube.Move, 0, s.Len())
	all = append(all, s.Phase1...)
	all = append(all, s.Phase2...)
	return all
}

func (s Solution) String() string { return cube.MovesString(s.Moves()) }

// Solver runs the iterative-deepening two-phase search against a shared
// DataTable. Its mutable search stack (the in-progress phase1/phase2 move
// lists and the best solution found so far) belongs to this instance
// alone; the tables it reads are never mutated.
type Solver struct {
	table     *DataTable
	maxLength uint8
	timeout   time.Duration // zero means no timeout

	phase1Moves []cube.Move
	phase2Moves []cube.Move
	best        *Solution
}

// NewSolver constructs a Solver bounded to at most maxLength total moves,
// optionally cut short by timeout (zero disables the timeout; Solve then
// returns the first solution found, or nil once maxLength is exhausted).
func NewSolver(table *DataTable, maxLength uint8, timeout time.Duration) *Solver {
	return &Solver{table: table, maxLength: maxLength, timeout: timeout}
}

// Solve runs the outer iterative-deepening loop over total move count,
// returning the shortest solution found, or nil if none was found within
// maxLength (or before the timeout elapsed). Solve never returns an
// error: an unsolvable-within-bound search is reported as a nil
// *Solution, not a failure.
func (s *Solver) Solve(state cube.CubieCube) *Solution {
	s.best = nil

	start := time.Now()
	for depth := uint8(0); depth <= s.maxLength; depth++ {
		s.phase1Moves = s.phase1Moves[:0]
		s.phase2Moves = s.phase2Moves[:0]
		p1 := newPhase1State(state)
		timedOut := s.solvePhase1(state, p1, depth, start)
		if s.timeout > 0 {
			if time.Since(start) > s.timeout {
				return s.best
			}
		} else if timedOut {
			return s.best
		}
	}
	return s.best
}

// solvePhase1 searches for a phase-1 prefix of exactly depth remaining
// moves. It returns true to unwind the outer loop: either because a
// solution bottomed out, or because the timeout fired mid-search.
func (s *Solver) solvePhase1(initial cube.CubieCube, state phase1State, depth uint8, start time.Time) bool {
	if s.timedOut(start) {
		return true
	}
	if depth == 0 && state.isSolved() {
		cubeState := initial.ApplyMoves(s.phase1Moves)
		maxDepth := uint8(0)
		if int(s.maxLength) > len(s.phase1Moves) {
			maxDepth = s.maxLength - uint8(len(s.phase1Moves))
		}
		for phase2Depth := uint8(0); phase2Depth <= maxDepth; phase2Depth++ {
			p2 := newPhase2State(cubeState)
			if s.solvePhase2(p2, phase2Depth, start) {
				return true
			}
		}
		return false
	}
	if depth == 0 || state.prune(s.table.Pruning, depth) {
		return false
	}
	for i, m := range cube.AllMoves {
		if len(s.phase1Moves) > 0 {
			prev := s.phase1Moves[len(s.phase1Moves)-1]
			if !cube.IsMoveAvailable(prev, m) {
				continue
			}
		}
		s.phase1Moves = append(s.phase1Moves, m)
		next := state.next(s.table.Move, i)
		if s.solvePhase1(initial, next, depth-1, start) {
			return true
		}
		s.phase1Moves = s.phase1Moves[:len(s.phase1Moves)-1]
	}
	return false
}

// solvePhase2 searches for a phase-2 suffix of exactly depth remaining
// moves. Returning true at a solved leaf unwinds the phase2Depth loop in
// the caller even when the candidate didn't improve on the best solution
// found so far — an additional phase-2 move never finds a shorter
// solution at this phase-1 prefix, so the deepening loop stops here.
func (s *Solver) solvePhase2(state phase2State, depth uint8, start time.Time) bool {
	if s.timedOut(start) {
		return true
	}
	if depth == 0 && state.isSolved() {
		candidate := Solution{
			Phase1: append([]cube.Move(nil), s.phase1Moves...),
			Phase2: append([]cube.Move(nil), s.phase2Moves...),
		}
		if s.best == nil || candidate.Len() < s.best.Len() {
			s.best = &candidate
		}
		return true
	}
	if depth == 0 || state.prune(s.table.Pruning, depth) {
		return false
	}
	for i, m := range cube.Phase2Moves {
		var prev cube.Move
		hasPrev := false
		if len(s.phase2Moves) > 0 {
			prev = s.phase2Moves[len(s.phase2Moves)-1]
			hasPrev = true
		} else if len(s.phase1Moves) > 0 {
			prev = s.phase1Moves[len(s.phase1Moves)-1]
			hasPrev = true
		}
		if hasPrev && !cube.IsMoveAvailable(prev, m) {
			continue
		}
		s.phase2Moves = append(s.phase2Moves, m)
		next := state.next(s.table.Move, i)
		if s.solvePhase2(next, depth-1, start) {
			return true
		}
		s.phase2Moves = s.phase2Moves[:len(s.phase2Moves)-1]
	}
	return false
}

func (s *Solver) timedOut(start time.Time) bool {
	return s.timeout > 0 && time.Since(start) > s.timeout
}
