package twophase

import (
	"testing"

	"github.com/cube-solver/kociemba/internal/cube"
)

func TestMoveTableSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full move table build in -short mode")
	}
	mt := NewMoveTable()
	if len(mt.CO) != cube.COCount {
		t.Errorf("len(CO) = %d, want %d", len(mt.CO), cube.COCount)
	}
	if len(mt.EO) != cube.EOCount {
		t.Errorf("len(EO) = %d, want %d", len(mt.EO), cube.EOCount)
	}
	if len(mt.ECombo) != cube.ECount {
		t.Errorf("len(ECombo) = %d, want %d", len(mt.ECombo), cube.ECount)
	}
	if len(mt.CP) != cube.CPCount {
		t.Errorf("len(CP) = %d, want %d", len(mt.CP), cube.CPCount)
	}
	if len(mt.UDEP) != cube.UDEPCount {
		t.Errorf("len(UDEP) = %d, want %d", len(mt.UDEP), cube.UDEPCount)
	}
	if len(mt.EEP) != cube.EEPCount {
		t.Errorf("len(EEP) = %d, want %d", len(mt.EEP), cube.EEPCount)
	}
}

func TestMoveTableIdentityRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full move table build in -short mode")
	}
	// The solved state (coordinate index 0) under move U must land on
	// the same coordinate index as applying U directly.
	mt := NewMoveTable()
	want := cube.COToIndex(cube.Solved.ApplyMove(cube.U).CO)
	if got := int(mt.CO[0][0]); got != want {
		t.Errorf("CO[0][U] = %d, want %d", got, want)
	}
}

func TestPruningTableAdmissible(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full pruning table build in -short mode")
	}
	mt := NewMoveTable()
	pt := NewPruningTable(mt)
	if pt.COECombo[0][0] != 0 {
		t.Errorf("pruning distance at solved should be 0, got %d", pt.COECombo[0][0])
	}
	for i := range pt.COECombo {
		for j := range pt.COECombo[i] {
			if pt.COECombo[i][j] == maxDistance {
				t.Fatalf("COECombo[%d][%d] left unfilled", i, j)
			}
		}
	}
}
