package cube

// Color is one of the six facelet colors, named after the face they
// appear on when the cube is solved.
type Color byte

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

var colorLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func (c Color) Byte() byte { return colorLetters[c] }

func (c Color) String() string { return string(colorLetters[c]) }

// ParseColor maps a single Singmaster facelet letter to a Color.
func ParseColor(b byte) (Color, error) {
	for i, l := range colorLetters {
		if l == b {
			return Color(i), nil
		}
	}
	return 0, wrapf(cubeErrInvalidColor, "invalid color %q", string(b))
}

// FaceCube is the 54-sticker facelet representation, laid out as 9
// consecutive stickers per face in U-R-F-D-L-B order. Within a face the 9
// positions run left-to-right, top-to-bottom as viewed facing that face
// with U toward the top of the layout (position 5 of each face, the
// center, is fixed and never read for reconstruction).
type FaceCube struct {
	F [54]Color
}

// SolvedFace is the facelet state with every sticker matching its face.
var SolvedFace = func() FaceCube {
	var fc FaceCube
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			fc.F[face*9+i] = Color(face)
		}
	}
	return fc
}()

// Facelet position indices, named U1..U9, R1..R9, ... with the pattern
// face*9+offset, offset in [0,8] (1-indexed in comments to match the
// classic Kociemba numbering U1..U9).
const (
	U1 = iota
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	U9
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	L9
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// CornerFacelet maps each corner position to its 3 facelet indices, listed
// in the fixed cyclic order used to interpret CO (clockwise from U/D).
var CornerFacelet = [8][3]int{
	{U1, L1, B3}, // UBL
	{U3, B1, R3}, // UBR
	{U9, R1, F3}, // UFR
	{U7, F1, L3}, // UFL
	{D1, L9, F7}, // DFL
	{D3, F9, R7}, // DFR
	{D9, R9, B7}, // DBR
	{D7, B9, L7}, // DBL
}

// EdgeFacelet maps each edge position to its 2 facelet indices.
var EdgeFacelet = [12][2]int{
	{B6, L4}, // BL
	{B4, R6}, // BR
	{F6, R4}, // FR
	{F4, L6}, // FL
	{U2, B2}, // UB
	{U6, R2}, // UR
	{U8, F2}, // UF
	{U4, L2}, // UL
	{D2, F8}, // DF
	{D6, R8}, // DR
	{D8, B8}, // DB
	{D4, L8}, // DL
}

// CornerColor gives the home-position color triple for each corner, in the
// same cyclic order as CornerFacelet.
var CornerColor = [8][3]Color{
	{ColorU, ColorL, ColorB}, // UBL
	{ColorU, ColorB, ColorR}, // UBR
	{ColorU, ColorR, ColorF}, // UFR
	{ColorU, ColorF, ColorL}, // UFL
	{ColorD, ColorL, ColorF}, // DFL
	{ColorD, ColorF, ColorR}, // DFR
	{ColorD, ColorR, ColorB}, // DBR
	{ColorD, ColorB, ColorL}, // DBL
}

// EdgeColor gives the home-position color pair for each edge.
var EdgeColor = [12][2]Color{
	{ColorB, ColorL}, // BL
	{ColorB, ColorR}, // BR
	{ColorF, ColorR}, // FR
	{ColorF, ColorL}, // FL
	{ColorU, ColorB}, // UB
	{ColorU, ColorR}, // UR
	{ColorU, ColorF}, // UF
	{ColorU, ColorL}, // UL
	{ColorD, ColorF}, // DF
	{ColorD, ColorR}, // DR
	{ColorD, ColorB}, // DB
	{ColorD, ColorL}, // DL
}

// ToFaceCube paints the 54 facelets implied by c's permutation and
// orientation. c must satisfy IsSolvable; callers at the API boundary
// should check this themselves and return ErrInvalidCubieValue otherwise.
func (c CubieCube) ToFaceCube() FaceCube {
	fc := SolvedFace
	for i := 0; i < 8; i++ {
		for j := 0; j < 3; j++ {
			fc.F[CornerFacelet[i][j]] = CornerColor[c.CP[i]][(j+3-int(c.CO[i]))%3]
		}
	}
	for i := 0; i < 12; i++ {
		for j := 0; j < 2; j++ {
			fc.F[EdgeFacelet[i][j]] = EdgeColor[c.EP[i]][(j+int(c.EO[i]))%2]
		}
	}
	return fc
}

// ParseFaceCube parses a 54-character Singmaster facelet string in
// U-R-F-D-L-B order.
func ParseFaceCube(s string) (FaceCube, error) {
	if len(s) != 54 {
		return FaceCube{}, wrapf(cubeErrInvalidFaceletString, "facelet string must be 54 characters, got %d", len(s))
	}
	var fc FaceCube
	for i := 0; i < 54; i++ {
		col, err := ParseColor(s[i])
		if err != nil {
			return FaceCube{}, wrapf(cubeErrInvalidFaceletString, "facelet string %q", s)
		}
		fc.F[i] = col
	}
	return fc, nil
}

func (fc FaceCube) String() string {
	var b [54]byte
	for i, c := range fc.F {
		b[i] = c.Byte()
	}
	return string(b[:])
}

// ToCubieCube reconstructs a CubieCube from a facelet layout, identifying
// each cubie by matching its visible color pair/triple against the home
// CornerColor/EdgeColor tables and recovering orientation from how far
// that match is rotated from the canonical order. Returns
// ErrInvalidFaceletValue if no valid cube can be assembled, including when
// the colors are well-formed but not physically solvable.
func (fc FaceCube) ToCubieCube() (CubieCube, error) {
	var cc CubieCube

	for i := 0; i < 8; i++ {
		var ori int
		for ori = 0; ori < 3; ori++ {
			col := fc.F[CornerFacelet[i][ori]]
			if col == ColorU || col == ColorD {
				break
			}
		}
		col1 := fc.F[CornerFacelet[i][(ori+1)%3]]
		col2 := fc.F[CornerFacelet[i][(ori+2)%3]]

		found := false
		for j := 0; j < 8; j++ {
			if col1 == CornerColor[j][1] && col2 == CornerColor[j][2] {
				cc.CP[i] = Corner(j)
				cc.CO[i] = uint8(ori)
				found = true
				break
			}
		}
		if !found {
			return CubieCube{}, wrapf(cubeErrInvalidFaceletValue, "no corner matches facelet position %d", i)
		}
	}

	for i := 0; i < 12; i++ {
		col0 := fc.F[EdgeFacelet[i][0]]
		col1 := fc.F[EdgeFacelet[i][1]]

		found := false
		for j := 0; j < 12; j++ {
			if col0 == EdgeColor[j][0] && col1 == EdgeColor[j][1] {
				cc.EP[i] = Edge(j)
				cc.EO[i] = 0
				found = true
				break
			}
			if col0 == EdgeColor[j][1] && col1 == EdgeColor[j][0] {
				cc.EP[i] = Edge(j)
				cc.EO[i] = 1
				found = true
				break
			}
		}
		if !found {
			return CubieCube{}, wrapf(cubeErrInvalidFaceletValue, "no edge matches facelet position %d", i)
		}
	}

	if !cc.IsSolvable() {
		return CubieCube{}, wrapf(cubeErrInvalidFaceletValue, "facelets do not form a solvable cube")
	}
	return cc, nil
}
