package cube

// Edge identifies one of the twelve edge cubies by its solved position.
type Edge int

const (
	BL Edge = iota
	BR
	FR
	FL
	UB
	UR
	UF
	UL
	DF
	DR
	DB
	DL
)

var edgeNames = [12]string{"BL", "BR", "FR", "FL", "UB", "UR", "UF", "UL", "DF", "DR", "DB", "DL"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "invalid-edge"
	}
	return edgeNames[e]
}

// ParseEdge parses one of the 12 two-letter edge names above.
func ParseEdge(s string) (Edge, error) {
	for i, name := range edgeNames {
		if name == s {
			return Edge(i), nil
		}
	}
	return 0, wrapf(cubeErrInvalidEdge, "invalid edge %q", s)
}
