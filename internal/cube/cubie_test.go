package cube

import "testing"

func TestApplyMoveR(t *testing.T) {
	got := Solved.ApplyMove(R)
	want := rMove
	if !got.Equal(want) {
		t.Errorf("Solved.ApplyMove(R) = %+v, want %+v", got, want)
	}
}

func TestApplyMoveRRR(t *testing.T) {
	r2 := Solved.ApplyMove(R).ApplyMove(R)
	want2 := rMove.Mul(rMove)
	if !r2.Equal(want2) {
		t.Errorf("R R = %+v, want %+v", r2, want2)
	}

	r3 := r2.ApplyMove(R)
	want3 := r2.Mul(rMove)
	if !r3.Equal(want3) {
		t.Errorf("R R R = %+v, want %+v", r3, want3)
	}
}

func TestMulFThenR(t *testing.T) {
	got := fMove.Mul(rMove)
	want := CubieCube{
		CP: [8]Corner{UBL, UFL, UFR, DFL, DFR, DBR, UBR, DBL},
		CO: [8]uint8{0, 2, 1, 2, 1, 1, 2, 0},
		EP: [12]Edge{BL, UR, DR, DF, UB, UF, FL, UL, FR, BR, DB, DL},
		EO: [12]uint8{0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 0},
	}
	if !got.Equal(want) {
		t.Errorf("F*R = %+v, want %+v", got, want)
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	moves := []Move{R, U, R3, U3}
	c := Solved
	for i := 0; i < 6; i++ {
		c = c.ApplyMoves(moves)
	}
	if !c.Equal(Solved) {
		t.Errorf("(R U R' U')x6 = %+v, want solved", c)
	}
}

func TestScrambleSequence(t *testing.T) {
	scramble, err := ParseScramble("U F' D' F2 D B2 D' R2 U' F2 R2 D2 R2 U' L B L R F' D B'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	got := Solved.ApplyMoves(scramble)
	want := CubieCube{
		CP: [8]Corner{DFL, UBL, DFR, UBR, UFL, DBR, DBL, UFR},
		CO: [8]uint8{1, 2, 2, 0, 0, 0, 2, 2},
		EP: [12]Edge{UF, UR, DL, DB, BL, DF, UB, FL, UL, BR, FR, DR},
		EO: [12]uint8{0, 1, 1, 1, 1, 1, 1, 0, 0, 1, 0, 1},
	}
	if !got.Equal(want) {
		t.Errorf("scrambled = %+v, want %+v", got, want)
	}
}

func TestCountPerm(t *testing.T) {
	tests := []struct {
		name       string
		moves      string
		wantCorner int
		wantEdge   int
	}{
		{"solved", "", 0, 0},
		{"R U R' U'", "R U R' U'", 2, 2},
		{"longer sequence", "R U' R' U' R U R D R' U' R D' R' U2 R' U'", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ParseScramble(tt.moves)
			if err != nil {
				t.Fatalf("ParseScramble(%q): %v", tt.moves, err)
			}
			c := Solved.ApplyMoves(moves)
			if got := c.CountCornerPerm(); got != tt.wantCorner {
				t.Errorf("CountCornerPerm() = %d, want %d", got, tt.wantCorner)
			}
			if got := c.CountEdgePerm(); got != tt.wantEdge {
				t.Errorf("CountEdgePerm() = %d, want %d", got, tt.wantEdge)
			}
		})
	}
}

func TestCountTwist(t *testing.T) {
	tests := []struct {
		name       string
		moves      string
		wantCorner int
		wantEdge   int
	}{
		{"solved", "", 0, 0},
		{"R U R' U' R' F R F'", "R U R' U' R' F R F'", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ParseScramble(tt.moves)
			if err != nil {
				t.Fatalf("ParseScramble(%q): %v", tt.moves, err)
			}
			c := Solved.ApplyMoves(moves)
			if got := c.CountCornerTwist(); got != tt.wantCorner {
				t.Errorf("CountCornerTwist() = %d, want %d", got, tt.wantCorner)
			}
			if got := c.CountEdgeTwist(); got != tt.wantEdge {
				t.Errorf("CountEdgeTwist() = %d, want %d", got, tt.wantEdge)
			}
		})
	}
}

func TestSolvedIsSolvable(t *testing.T) {
	if !Solved.IsSolvable() {
		t.Error("Solved should be solvable")
	}
}

func TestDuplicateCornerIsUnsolvable(t *testing.T) {
	c := Solved
	c.CP[1] = c.CP[0]
	if c.IsSolvable() {
		t.Error("cube with a duplicated corner should not be solvable")
	}
}
