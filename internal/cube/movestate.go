package cube

// The six quarter-turn generators, as CubieCube states applied by
// right-multiplication (ApplyMove computes c.Mul(move)). Orientation deltas and permutation cycles below are
// the direct geometric derivation of each face turn.
var (
	uMove = CubieCube{
		CP: [8]Corner{UFL, UBL, UBR, UFR, DFL, DFR, DBR, DBL},
		CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{BL, BR, FR, FL, UL, UB, UR, UF, DF, DR, DB, DL},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	dMove = CubieCube{
		CP: [8]Corner{UBL, UBR, UFR, UFL, DBL, DFL, DFR, DBR},
		CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{BL, BR, FR, FL, UB, UR, UF, UL, DL, DF, DR, DB},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	rMove = CubieCube{
		CP: [8]Corner{UBL, UFR, DFR, UFL, DFL, DBR, UBR, DBL},
		CO: [8]uint8{0, 1, 2, 0, 0, 1, 2, 0},
		EP: [12]Edge{BL, UR, DR, FL, UB, FR, UF, UL, DF, BR, DB, DL},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	lMove = CubieCube{
		CP: [8]Corner{DBL, UBR, UFR, UBL, UFL, DFR, DBR, DFL},
		CO: [8]uint8{2, 0, 0, 1, 2, 0, 0, 1},
		EP: [12]Edge{DL, BR, FR, UL, UB, UR, UF, BL, DF, DR, DB, FL},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	fMove = CubieCube{
		CP: [8]Corner{UBL, UBR, UFL, DFL, DFR, UFR, DBR, DBL},
		CO: [8]uint8{0, 0, 1, 2, 1, 2, 0, 0},
		EP: [12]Edge{BL, BR, UF, DF, UB, UR, FL, UL, FR, DR, DB, DL},
		EO: [12]uint8{0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0},
	}
	bMove = CubieCube{
		CP: [8]Corner{UBR, DBR, UFR, UFL, DFL, DFR, DBL, UBL},
		CO: [8]uint8{1, 2, 0, 0, 0, 0, 1, 2},
		EP: [12]Edge{UB, DB, FR, FL, BR, UR, UF, UL, DF, DR, BL, DL},
		EO: [12]uint8{1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0},
	}
)

var baseMoveState = [6]CubieCube{uMove, dMove, rMove, lMove, fMove, bMove}

// moveState returns the CubieCube corresponding to performing m once,
// derived from the six quarter-turn generators by repeated composition.
func moveState(m Move) CubieCube {
	base := baseMoveState[int(m)/3]
	switch m % 3 {
	case 0:
		return base
	case 1:
		return base.Mul(base)
	default:
		return base.Mul(base).Mul(base)
	}
}
