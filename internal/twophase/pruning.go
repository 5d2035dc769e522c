package twophase

// maxDistance is the sentinel marking an unfilled pruning table cell. A
// real distance never reaches it for any reachable two-phase search.
const maxDistance = 255

// PruningTable holds the four BFS-filled admissible-lower-bound tables:
// two for phase 1 (CO x E-combo, EO x E-combo under all 18 moves) and two
// for phase 2 (CP x E-EP, UD-EP x E-EP under the 10 phase-2 moves).
type PruningTable struct {
	COECombo   [][]uint8
	EOECombo   [][]uint8
	CPEEP      [][]uint8
	UDEPEEP    [][]uint8
}

// NewPruningTable runs a breadth-first fill over each coordinate pair
// using the corresponding move table slices, producing an admissible
// lower bound on remaining search depth for every (coordA, coordB) pair.
func NewPruningTable(mt *MoveTable) *PruningTable {
	return &PruningTable{
		COECombo: bfsFillPhase1(mt.CO, mt.ECombo),
		EOECombo: bfsFillPhase1(mt.EO, mt.ECombo),
		CPEEP:    bfsFillPhase2(mt.CP, mt.EEP),
		UDEPEEP:  bfsFillPhase2(mt.UDEP, mt.EEP),
	}
}

// bfsFillPhase1 is the generic BFS used for both phase-1 pruning tables,
// ported from the two-pass "distance, then filled count" loop in the
// original implementation: starting from the solved (0,0) pair at
// distance 0, every move applied to a cell at the current distance that
// reaches an unfilled cell gets distance+1, repeated until the table is
// saturated.
func bfsFillPhase1(table1, table2 [][18]uint16) [][]uint8 {
	len1, len2 := len(table1), len(table2)
	pruning := make([][]uint8, len1)
	for i := range pruning {
		pruning[i] = make([]uint8, len2)
		for j := range pruning[i] {
			pruning[i][j] = maxDistance
		}
	}
	pruning[0][0] = 0
	filled := 1
	total := len1 * len2
	for distance := uint8(0); filled != total; distance++ {
		for i, ti := range table1 {
			for j, tj := range table2 {
				if pruning[i][j] != distance {
					continue
				}
				for m := 0; m < 18; m++ {
					k, l := int(ti[m]), int(tj[m])
					if pruning[k][l] == maxDistance {
						pruning[k][l] = distance + 1
						filled++
					}
				}
			}
		}
	}
	return pruning
}

func bfsFillPhase2(table1, table2 [][10]uint16) [][]uint8 {
	len1, len2 := len(table1), len(table2)
	pruning := make([][]uint8, len1)
	for i := range pruning {
		pruning[i] = make([]uint8, len2)
		for j := range pruning[i] {
			pruning[i][j] = maxDistance
		}
	}
	pruning[0][0] = 0
	filled := 1
	total := len1 * len2
	for distance := uint8(0); filled != total; distance++ {
		for i, ti := range table1 {
			for j, tj := range table2 {
				if pruning[i][j] != distance {
					continue
				}
				for m := 0; m < 10; m++ {
					k, l := int(ti[m]), int(tj[m])
					if pruning[k][l] == maxDistance {
						pruning[k][l] = distance + 1
						filled++
					}
				}
			}
		}
	}
	return pruning
}
