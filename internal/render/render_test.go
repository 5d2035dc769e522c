package render

import (
	"strings"
	"testing"

	"github.com/cube-solver/kociemba/internal/cube"
)

func TestFaceletSolvedHasNineLines(t *testing.T) {
	out := Facelet(cube.SolvedFace)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 rendered rows, got %d", len(lines))
	}
}

func TestFaceletContainsEveryColorLetter(t *testing.T) {
	out := Facelet(cube.SolvedFace)
	for _, letter := range []byte{'U', 'R', 'F', 'D', 'L', 'B'} {
		if !strings.Contains(out, string(letter)) {
			t.Errorf("expected rendered output to contain %q", string(letter))
		}
	}
}
