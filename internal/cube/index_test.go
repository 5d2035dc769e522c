package cube

import "testing"

func TestCOIndexRoundTrip(t *testing.T) {
	if got := COToIndex(Solved.CO); got != 0 {
		t.Errorf("COToIndex(solved) = %d, want 0", got)
	}
	if got := IndexToCO(0); got != Solved.CO {
		t.Errorf("IndexToCO(0) = %v, want %v", got, Solved.CO)
	}

	co := [8]uint8{2, 0, 0, 1, 1, 0, 0, 2}
	if got := COToIndex(co); got != 1494 {
		t.Errorf("COToIndex(%v) = %d, want 1494", co, got)
	}
	if got := IndexToCO(1494); got != co {
		t.Errorf("IndexToCO(1494) = %v, want %v", got, co)
	}
}

func TestEOIndexRoundTrip(t *testing.T) {
	if got := EOToIndex(Solved.EO); got != 0 {
		t.Errorf("EOToIndex(solved) = %d, want 0", got)
	}
	var allOnes [12]uint8
	for i := range allOnes {
		allOnes[i] = 1
	}
	if got := EOToIndex(allOnes); got != 2047 {
		t.Errorf("EOToIndex(all ones) = %d, want 2047", got)
	}
	if got := IndexToEO(2047); got != allOnes {
		t.Errorf("IndexToEO(2047) = %v, want %v", got, allOnes)
	}
}

func TestEComboIndexRoundTrip(t *testing.T) {
	if got := EComboToIndex(Solved.EP); got != 0 {
		t.Errorf("EComboToIndex(solved) = %d, want 0", got)
	}
	want0 := [12]Edge{BL, BR, FR, FL, UB, UB, UB, UB, UB, UB, UB, UB}
	if got := IndexToECombo(0); got != want0 {
		t.Errorf("IndexToECombo(0) = %v, want %v", got, want0)
	}

	fake := [12]Edge{UB, UB, UB, UB, UB, UB, UB, UB, BL, BR, FR, FL}
	if got := EComboToIndex(fake); got != 494 {
		t.Errorf("EComboToIndex(%v) = %d, want 494", fake, got)
	}
}

func TestCPIndexRoundTrip(t *testing.T) {
	if got := CPToIndex(Solved.CP); got != 0 {
		t.Errorf("CPToIndex(solved) = %d, want 0", got)
	}
	reversed := [8]Corner{DBL, DBR, DFR, DFL, UFL, UFR, UBR, UBL}
	if got := CPToIndex(reversed); got != 40319 {
		t.Errorf("CPToIndex(reversed) = %d, want 40319", got)
	}
	if got := IndexToCP(40319); got != reversed {
		t.Errorf("IndexToCP(40319) = %v, want %v", got, reversed)
	}
}

func TestUDEPIndexRoundTrip(t *testing.T) {
	if got := UDEPToIndex(Solved.EP); got != 0 {
		t.Errorf("UDEPToIndex(solved) = %d, want 0", got)
	}
	edges := [12]Edge{BL, BR, FR, FL, DL, DB, DR, DF, UL, UF, UR, UB}
	if got := UDEPToIndex(edges); got != 40319 {
		t.Errorf("UDEPToIndex(edges) = %d, want 40319", got)
	}
	back := IndexToUDEP(40319)
	for i := 4; i < 12; i++ {
		if back[i] != edges[i] {
			t.Errorf("IndexToUDEP(40319)[%d] = %v, want %v", i, back[i], edges[i])
		}
	}
}

func TestEEPIndexRoundTrip(t *testing.T) {
	if got := EEPToIndex(Solved.EP); got != 0 {
		t.Errorf("EEPToIndex(solved) = %d, want 0", got)
	}
	edges := [12]Edge{FL, FR, BR, BL, UB, UR, UF, UL, DF, DR, DB, DL}
	if got := EEPToIndex(edges); got != 23 {
		t.Errorf("EEPToIndex(edges) = %d, want 23", got)
	}
	back := IndexToEEP(23)
	for i := 0; i < 4; i++ {
		if back[i] != edges[i] {
			t.Errorf("IndexToEEP(23)[%d] = %v, want %v", i, back[i], edges[i])
		}
	}
}

func TestEPIndexRoundTrip(t *testing.T) {
	if got := EPToIndex(Solved.EP); got != 0 {
		t.Errorf("EPToIndex(solved) = %d, want 0", got)
	}
	reversed := [12]Edge{DL, DB, DR, DF, UL, UF, UR, UB, FL, FR, BR, BL}
	if got := EPToIndex(reversed); got != 479001599 {
		t.Errorf("EPToIndex(reversed) = %d, want 479001599", got)
	}
	if got := IndexToEP(479001599); got != reversed {
		t.Errorf("IndexToEP(479001599) = %v, want %v", got, reversed)
	}
}
