package cfen

import (
	"testing"

	"github.com/cube-solver/kociemba/internal/cube"
)

func TestFromFaceCubeRoundTrip(t *testing.T) {
	p := FromFaceCube(cube.SolvedFace)
	want := "U9/R9/F9/D9/L9/B9"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	got, err := ParsePattern(want)
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if got != p {
		t.Fatalf("ParsePattern(%q) = %+v, want %+v", want, got, p)
	}
}

func TestPatternMatchesWildcard(t *testing.T) {
	p, err := ParsePattern("U9/?9/?9/?9/?9/?9")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if !p.Matches(cube.SolvedFace) {
		t.Fatal("expected wildcard pattern to match solved cube")
	}

	scrambled := cube.Solved.ApplyMoves([]cube.Move{cube.D})
	if !p.Matches(scrambled.ToFaceCube()) {
		t.Fatal("expected U-only pattern to still match after D since U face is untouched")
	}

	scrambledR := cube.Solved.ApplyMoves([]cube.Move{cube.R})
	if p.Matches(scrambledR.ToFaceCube()) {
		t.Fatal("expected U-only pattern to reject a cube after R, which moves F stickers onto the U face")
	}
}

func TestParsePatternWrongFaceCount(t *testing.T) {
	if _, err := ParsePattern("U9/R9/F9"); err == nil {
		t.Fatal("expected error for too few faces")
	}
}

func TestParsePatternBadSticker(t *testing.T) {
	if _, err := ParsePattern("U9/R9/F9/D9/L9/X9"); err == nil {
		t.Fatal("expected error for invalid sticker letter")
	}
}
