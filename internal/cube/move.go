package cube

import "strings"

// Move is one of the 18 quarter- and half-turn face moves.
type Move int

const (
	U Move = iota
	U2
	U3
	D
	D2
	D3
	R
	R2
	R3
	L
	L2
	L3
	F
	F2
	F3
	B
	B2
	B3
)

// AllMoves is the complete, distinct 18-move set in the canonical order
// U,U2,U3,D,D2,D3,R,R2,R3,L,L2,L3,F,F2,F3,B,B2,B3. The corresponding table
// in the reference implementation this package is grounded on carries a
// duplicated F2 entry in place of F3 and a misordered B triple; AllMoves is
// checked at init time to guarantee it never repeats that mistake.
var AllMoves = [18]Move{U, U2, U3, D, D2, D3, R, R2, R3, L, L2, L3, F, F2, F3, B, B2, B3}

// Phase2Moves is the 10-move subset that stabilizes the G1 subgroup:
// U, U2, U3, D, D2, D3, R2, L2, F2, B2.
var Phase2Moves = [10]Move{U, U2, U3, D, D2, D3, R2, L2, F2, B2}

func init() {
	var seen [18]bool
	for _, m := range AllMoves {
		if m < 0 || int(m) >= 18 || seen[m] {
			panic("cube: AllMoves is not a permutation of the 18 distinct moves")
		}
		seen[m] = true
	}
}

var moveNames = [18]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"R", "R2", "R'",
	"L", "L2", "L'",
	"F", "F2", "F'",
	"B", "B2", "B'",
}

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "invalid-move"
	}
	return moveNames[m]
}

// ParseMove parses Singmaster-style notation: a face letter optionally
// followed by ' (counter-clockwise) or 2 (double turn).
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}
	// Accept the common ASCII alternative of a trailing "3" for CCW quarter
	// turns (R3 == R'), used by some scramble generators in this codebase's
	// grounding material.
	if len(s) == 2 && s[1] == '3' {
		if base, err := ParseMove(s[:1]); err == nil {
			return base + 2, nil
		}
	}
	return 0, wrapf(cubeErrInvalidMove, "invalid move %q", s)
}

// ParseScramble splits a whitespace-separated move sequence.
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, wrapf(cubeErrInvalidScramble, "invalid scramble %q", s)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// MovesString joins a move sequence back into Singmaster notation.
func MovesString(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// face returns the face-family of a move: U,D,R,L,F,B each cover 3 moves.
func (m Move) face() Move {
	return Move(int(m) / 3 * 3)
}

// IsSameLayer reports whether m and other turn the same face.
func (m Move) IsSameLayer(other Move) bool {
	return m.face() == other.face()
}

// IsInverse reports whether m and other are opposite-face moves on the
// same axis (U/D, R/L, F/B) — used to reject canonically-redundant move
// orderings during search.
func (m Move) IsInverse(other Move) bool {
	mf, of := m.face(), other.face()
	switch mf {
	case U:
		return of == D
	case D:
		return of == U
	case R:
		return of == L
	case L:
		return of == R
	case F:
		return of == B
	case B:
		return of == F
	}
	return false
}

// GetInverse returns the move that undoes m.
func (m Move) GetInverse() Move {
	switch m % 3 {
	case 0:
		return m + 2
	case 2:
		return m - 2
	default:
		return m
	}
}

// IsMoveAvailable reports whether current may legally follow prev in a
// search: it must not repeat prev's move, its face, or prev's opposite
// face (opposite-face pairs are only searched in one fixed order to avoid
// exploring both orderings of commuting moves).
func IsMoveAvailable(prev, current Move) bool {
	return current != prev && !current.IsSameLayer(prev) && !isNonCanonicalOpposite(prev, current)
}

func isNonCanonicalOpposite(prev, current Move) bool {
	return current.IsInverse(prev) && current.face() < prev.face()
}
