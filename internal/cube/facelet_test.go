package cube

import "testing"

func TestSolvedFaceCube(t *testing.T) {
	got := Solved.ToFaceCube()
	if got != SolvedFace {
		t.Errorf("Solved.ToFaceCube() = %v, want %v", got, SolvedFace)
	}
}

func TestFaceletToCubie(t *testing.T) {
	const facelets = "DRBLUURLDRBLRRBFLFFUBFFDRUDURRBDFBBULDUDLUDLBUFFDBFLRL"
	fc, err := ParseFaceCube(facelets)
	if err != nil {
		t.Fatalf("ParseFaceCube: %v", err)
	}
	got, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube: %v", err)
	}
	want := CubieCube{
		CP: [8]Corner{DFL, UBL, DBR, UFR, UBR, DFR, UFL, DBL},
		CO: [8]uint8{0, 1, 0, 2, 0, 1, 0, 2},
		EP: [12]Edge{DF, DB, DR, UF, FR, UB, UL, DL, UR, FL, BR, BL},
		EO: [12]uint8{1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 0, 0},
	}
	if !got.Equal(want) {
		t.Errorf("ToCubieCube() = %+v, want %+v", got, want)
	}
}

func TestCubieToFaceletRoundTrip(t *testing.T) {
	const facelets = "DRBLUURLDRBLRRBFLFFUBFFDRUDURRBDFBBULDUDLUDLBUFFDBFLRL"
	fc, err := ParseFaceCube(facelets)
	if err != nil {
		t.Fatalf("ParseFaceCube: %v", err)
	}
	cc, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube: %v", err)
	}
	back := cc.ToFaceCube()
	if back != fc {
		t.Errorf("round trip mismatch: got %s, want %s", back.String(), fc.String())
	}
}

func TestParseFaceCubeWrongLength(t *testing.T) {
	if _, err := ParseFaceCube("UUU"); err == nil {
		t.Error("expected error for short facelet string")
	}
}

func TestFaceCubeUnsolvableValue(t *testing.T) {
	// A single flipped edge with everything else solved is not solvable.
	cc := Solved
	cc.EO[0] = 1
	fc := cc.ToFaceCube()
	if _, err := fc.ToCubieCube(); err == nil {
		t.Error("expected ErrInvalidFaceletValue for a single flipped edge")
	}
}
