package cube

// CubieCube is the cubie-level representation of a cube state: a
// permutation plus orientation for the 8 corners and 12 edges. Composition
// is defined so that (A.Mul(B)) represents performing A first, then B,
// matching the group action on a physical cube.
type CubieCube struct {
	CP [8]Corner
	CO [8]uint8
	EP [12]Edge
	EO [12]uint8
}

// Solved is the identity element: every cubie in its home position with
// zero orientation.
var Solved = CubieCube{
	CP: [8]Corner{UBL, UBR, UFR, UFL, DFL, DFR, DBR, DBL},
	CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
	EP: [12]Edge{BL, BR, FR, FL, UB, UR, UF, UL, DF, DR, DB, DL},
	EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// Mul composes two cube states: (a.Mul(b)) = apply a, then apply b.
// (a*b).cp[i] = a.cp[b.cp[i]]; (a*b).co[i] = a.co[b.cp[i]] + b.co[i] (mod 3).
// Edges follow the same shape modulo 2.
func (a CubieCube) Mul(b CubieCube) CubieCube {
	var r CubieCube
	for i := 0; i < 8; i++ {
		r.CP[i] = a.CP[b.CP[i]]
		r.CO[i] = (a.CO[b.CP[i]] + b.CO[i]) % 3
	}
	for i := 0; i < 12; i++ {
		r.EP[i] = a.EP[b.EP[i]]
		r.EO[i] = (a.EO[b.EP[i]] + b.EO[i]) % 2
	}
	return r
}

// ApplyMove returns the state produced by performing m on c.
func (c CubieCube) ApplyMove(m Move) CubieCube {
	return c.Mul(moveState(m))
}

// ApplyMoves folds ApplyMove over the given sequence in order.
func (c CubieCube) ApplyMoves(moves []Move) CubieCube {
	for _, m := range moves {
		c = c.ApplyMove(m)
	}
	return c
}

// CountCornerTwist sums each corner's orientation distance to solved,
// counting clockwise twists as (3-co)%3 so that the corner-twist parity
// invariant (sum % 3 == 0) matches the edge-twist invariant's role.
func (c CubieCube) CountCornerTwist() int {
	total := 0
	for _, co := range c.CO {
		total += int((3 - co) % 3)
	}
	return total
}

// CountEdgeTwist sums edge orientations.
func (c CubieCube) CountEdgeTwist() int {
	total := 0
	for _, eo := range c.EO {
		total += int(eo)
	}
	return total
}

// CountCornerPerm counts the number of transpositions in the corner
// permutation via cycle decomposition.
func (c CubieCube) CountCornerPerm() int {
	cp := c.CP
	count := 0
	for i := 0; i < 8; i++ {
		if int(cp[i]) != i {
			j := i + 1
			for int(cp[j]) != i {
				j++
			}
			cp[i], cp[j] = cp[j], cp[i]
			count++
		}
	}
	return count
}

// CountEdgePerm counts the number of transpositions in the edge
// permutation via cycle decomposition.
func (c CubieCube) CountEdgePerm() int {
	ep := c.EP
	count := 0
	for i := 0; i < 12; i++ {
		if int(ep[i]) != i {
			j := i + 1
			for int(ep[j]) != i {
				j++
			}
			ep[i], ep[j] = ep[j], ep[i]
			count++
		}
	}
	return count
}

func hasDuplicateCorners(cp [8]Corner) bool {
	var seen [8]bool
	for _, c := range cp {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

func hasDuplicateEdges(ep [12]Edge) bool {
	var seen [12]bool
	for _, e := range ep {
		if seen[e] {
			return true
		}
		seen[e] = true
	}
	return false
}

// IsSolvable reports whether c corresponds to a physically assemblable
// cube: no duplicated cubies, matching corner/edge permutation parity, and
// both orientation sums divisible by their modulus.
func (c CubieCube) IsSolvable() bool {
	if hasDuplicateCorners(c.CP) || hasDuplicateEdges(c.EP) {
		return false
	}
	if c.CountCornerPerm()%2 != c.CountEdgePerm()%2 {
		return false
	}
	if c.CountCornerTwist()%3 != 0 {
		return false
	}
	if c.CountEdgeTwist()%2 != 0 {
		return false
	}
	return true
}

// Equal reports whether two cube states are identical field-for-field.
func (c CubieCube) Equal(o CubieCube) bool {
	return c.CP == o.CP && c.CO == o.CO && c.EP == o.EP && c.EO == o.EO
}

// IsSolved reports whether c is the identity state.
func (c CubieCube) IsSolved() bool {
	return c.Equal(Solved)
}
