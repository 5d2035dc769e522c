// Package twophase implements Kociemba's two-phase search: the move and
// pruning tables that drive it, the iterative-deepening solver itself, and
// the byte-blob persistence format the `table` command writes.
package twophase

import "github.com/cube-solver/kociemba/internal/cube"

// MoveTable holds the coordinate transition tables for every phase-1 and
// phase-2 coordinate. Phase-1 tables are indexed by all 18 moves; phase-2
// tables are indexed by the 10 phase-2 moves only.
type MoveTable struct {
	CO      [][18]uint16 // cube.COCount x 18
	EO      [][18]uint16 // cube.EOCount x 18
	ECombo  [][18]uint16 // cube.ECount x 18
	CP      [][10]uint16 // cube.CPCount x 10
	UDEP    [][10]uint16 // cube.UDEPCount x 10
	EEP     [][10]uint16 // cube.EEPCount x 10
}

// NewMoveTable builds the full set of coordinate transition tables by
// materializing each coordinate value into a solved cube with only that
// coordinate set, applying every move, and re-encoding the result.
func NewMoveTable() *MoveTable {
	mt := &MoveTable{
		CO:     buildPhase1Table(cube.COCount, func(c cube.CubieCube) int { return cube.COToIndex(c.CO) }, func(idx int) cube.CubieCube {
			c := cube.Solved
			c.CO = cube.IndexToCO(idx)
			return c
		}),
		EO: buildPhase1Table(cube.EOCount, func(c cube.CubieCube) int { return cube.EOToIndex(c.EO) }, func(idx int) cube.CubieCube {
			c := cube.Solved
			c.EO = cube.IndexToEO(idx)
			return c
		}),
		ECombo: buildPhase1Table(cube.ECount, func(c cube.CubieCube) int { return cube.EComboToIndex(c.EP) }, func(idx int) cube.CubieCube {
			c := cube.Solved
			c.EP = cube.IndexToECombo(idx)
			return c
		}),
		CP: buildPhase2Table(cube.CPCount, func(c cube.CubieCube) int { return cube.CPToIndex(c.CP) }, func(idx int) cube.CubieCube {
			c := cube.Solved
			c.CP = cube.IndexToCP(idx)
			return c
		}),
		UDEP: buildPhase2Table(cube.UDEPCount, func(c cube.CubieCube) int { return cube.UDEPToIndex(c.EP) }, func(idx int) cube.CubieCube {
			c := cube.Solved
			c.EP = cube.IndexToUDEP(idx)
			return c
		}),
		EEP: buildPhase2Table(cube.EEPCount, func(c cube.CubieCube) int { return cube.EEPToIndex(c.EP) }, func(idx int) cube.CubieCube {
			c := cube.Solved
			c.EP = cube.IndexToEEP(idx)
			return c
		}),
	}
	return mt
}

func buildPhase1Table(count int, encode func(cube.CubieCube) int, decode func(int) cube.CubieCube) [][18]uint16 {
	table := make([][18]uint16, count)
	for idx := 0; idx < count; idx++ {
		base := decode(idx)
		for m := 0; m < 18; m++ {
			next := base.ApplyMove(cube.AllMoves[m])
			table[idx][m] = uint16(encode(next))
		}
	}
	return table
}

func buildPhase2Table(count int, encode func(cube.CubieCube) int, decode func(int) cube.CubieCube) [][10]uint16 {
	table := make([][10]uint16, count)
	for idx := 0; idx < count; idx++ {
		base := decode(idx)
		for m := 0; m < 10; m++ {
			next := base.ApplyMove(cube.Phase2Moves[m])
			table[idx][m] = uint16(encode(next))
		}
	}
	return table
}
