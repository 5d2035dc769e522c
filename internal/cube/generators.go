package cube

import "math/rand"

// swapEdges swaps two distinct random positions chosen from candidates.
func swapEdges(c *CubieCube, r *rand.Rand, candidates []int) {
	i := candidates[r.Intn(len(candidates))]
	j := candidates[r.Intn(len(candidates))]
	for j == i {
		j = candidates[r.Intn(len(candidates))]
	}
	c.EP[i], c.EP[j] = c.EP[j], c.EP[i]
}

// swapCorners swaps two distinct random positions chosen from candidates.
func swapCorners(c *CubieCube, r *rand.Rand, candidates []int) {
	i := candidates[r.Intn(len(candidates))]
	j := candidates[r.Intn(len(candidates))]
	for j == i {
		j = candidates[r.Intn(len(candidates))]
	}
	c.CP[i], c.CP[j] = c.CP[j], c.CP[i]
}

// fixParity flips a coin between swapping two corners and two edges,
// drawn from the given candidate position sets, to repair a parity
// mismatch produced by independently randomizing corners and edges.
func fixParity(c *CubieCube, r *rand.Rand, corners, edges []int) {
	if r.Intn(2) == 0 {
		swapEdges(c, r, edges)
	} else {
		swapCorners(c, r, corners)
	}
}

// RandomState returns a uniformly random solvable cube state: corners and
// edges are independently randomized, then parity is repaired with a
// single corner or edge swap if needed.
func RandomState(r *rand.Rand) CubieCube {
	c := CubieCube{
		CP: IndexToCP(r.Intn(CPCount)),
		CO: IndexToCO(r.Intn(COCount)),
		EP: IndexToEP(r.Intn(epFullCount)),
		EO: IndexToEO(r.Intn(EOCount)),
	}
	if !c.IsSolvable() {
		fixParity(&c, r, allCornerPositions, allEdgePositions)
	}
	return c
}

// RandomStateCornersSolved returns a random state with every corner in
// its solved position and orientation, edges fully randomized.
func RandomStateCornersSolved(r *rand.Rand) CubieCube {
	c := Solved
	c.EP = IndexToEP(r.Intn(epFullCount))
	c.EO = IndexToEO(r.Intn(EOCount))
	if !c.IsSolvable() {
		swapEdges(&c, r, allEdgePositions)
	}
	return c
}

// RandomStateEdgesSolved returns a random state with every edge in its
// solved position and orientation, corners fully randomized.
func RandomStateEdgesSolved(r *rand.Rand) CubieCube {
	c := Solved
	c.CP = IndexToCP(r.Intn(CPCount))
	c.CO = IndexToCO(r.Intn(COCount))
	if !c.IsSolvable() {
		swapCorners(&c, r, allCornerPositions)
	}
	return c
}

// RandomStateOLLCrossSolved returns a random state with the first two
// layers solved and every edge oriented (the last-layer cross of OLL);
// last-layer corner permutation and orientation and last-layer edge
// permutation are randomized.
func RandomStateOLLCrossSolved(r *rand.Rand) CubieCube {
	c := Solved
	c.CP = indexToCPF2L(r.Intn(24))
	c.CO = indexToCOF2L(r.Intn(27))
	c.EP = indexToEPF2L(r.Intn(24))
	if !c.IsSolvable() {
		fixParity(&c, r, f2lCornerPositions, f2lEdgePositions)
	}
	return c
}

// RandomStateOLLSolved returns a random state with the full last layer
// orientation solved (cross plus corner/edge orientation), permutation of
// the last layer left random.
func RandomStateOLLSolved(r *rand.Rand) CubieCube {
	c := Solved
	c.CP = indexToCPF2L(r.Intn(24))
	c.EP = indexToEPF2L(r.Intn(24))
	if !c.IsSolvable() {
		fixParity(&c, r, f2lCornerPositions, f2lEdgePositions)
	}
	return c
}

// RandomStateF2LSolved returns a random state with the first two layers
// solved and the last layer (both permutation and orientation)
// randomized.
func RandomStateF2LSolved(r *rand.Rand) CubieCube {
	c := Solved
	c.CP = indexToCPF2L(r.Intn(24))
	c.CO = indexToCOF2L(r.Intn(27))
	c.EP = indexToEPF2L(r.Intn(24))
	c.EO = indexToEOF2L(r.Intn(8))
	if !c.IsSolvable() {
		fixParity(&c, r, f2lCornerPositions, f2lEdgePositions)
	}
	return c
}

// RandomStateCrossSolved returns a random state with only the bottom
// cross solved; corners and the remaining 8 edges are fully randomized.
func RandomStateCrossSolved(r *rand.Rand) CubieCube {
	c := CubieCube{
		CP: IndexToCP(r.Intn(CPCount)),
		CO: IndexToCO(r.Intn(COCount)),
		EP: indexToEPCross(r.Intn(CPCount)),
		EO: indexToEOCross(r.Intn(128)),
	}
	if !c.IsSolvable() {
		fixParity(&c, r, allCornerPositions, allCornerPositions)
	}
	return c
}

const epFullCount = 479001600 // 12!

var allCornerPositions = []int{0, 1, 2, 3, 4, 5, 6, 7}
var allEdgePositions = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
var f2lCornerPositions = []int{0, 1, 2, 3}
var f2lEdgePositions = []int{4, 5, 6, 7}

// indexToCPF2L decodes a permutation of the 4 top-layer corners (slots
// 0..4), leaving the 4 bottom corners fixed at their solved identity.
func indexToCPF2L(index int) [8]Corner {
	slice := make([]int, 4)
	fillPermSlice(slice, index)
	cp := [8]Corner{0, 0, 0, 0, DFL, DFR, DBR, DBL}
	for i, v := range slice {
		cp[i] = Corner(v)
	}
	return cp
}

// indexToCOF2L decodes the orientation of the 4 top-layer corners.
func indexToCOF2L(index int) [8]uint8 {
	var co [8]uint8
	fillOrientationSlice(co[:4], 3, index)
	return co
}

// indexToEPF2L decodes a permutation of the 4 U-layer edges (slots
// 4..8), leaving the E-slice (0..4) and D-layer (8..12) edges fixed.
func indexToEPF2L(index int) [12]Edge {
	ep := [12]Edge{0, 1, 2, 3, 4, 4, 4, 4, DF, DR, DB, DL}
	slice := make([]int, 4)
	for i := range slice {
		slice[i] = 4
	}
	fillPermSlice(slice, index)
	for i, v := range slice {
		ep[4+i] = Edge(v)
	}
	return ep
}

// indexToEOF2L decodes the orientation of the 4 U-layer edges.
func indexToEOF2L(index int) [12]uint8 {
	var eo [12]uint8
	fillOrientationSlice(eo[4:8], 2, index)
	return eo
}

// indexToEPCross decodes a permutation of the top 8 edges (slots 0..8),
// leaving the bottom cross (8..12) fixed.
func indexToEPCross(index int) [12]Edge {
	ep := [12]Edge{0, 0, 0, 0, 0, 0, 0, 0, DF, DR, DB, DL}
	slice := make([]int, 8)
	fillPermSlice(slice, index)
	for i, v := range slice {
		ep[i] = Edge(v)
	}
	return ep
}

// indexToEOCross decodes the orientation of the top 8 edges.
func indexToEOCross(index int) [12]uint8 {
	var eo [12]uint8
	fillOrientationSlice(eo[:8], 2, index)
	return eo
}
