// Package cfen implements a compact, wildcard-capable notation for 3x3x3
// facelet patterns: run-length encoded per face, in U/R/F/D/L/B order, with
// '?' standing for "don't care". It is used by the CLI's verify command to
// describe partial patterns (an OLL cross, an F2L pair) without spelling out
// all 54 stickers.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/cubeerr"
)

// Sticker is either a concrete facelet color or a wildcard that matches any
// color.
type Sticker struct {
	Color cube.Color
	Wild  bool
}

// Pattern is a 54-sticker CFEN pattern in U-R-F-D-L-B order, the same layout
// as cube.FaceCube.
type Pattern struct {
	Stickers [54]Sticker
}

// FromFaceCube builds an exact (wildcard-free) pattern from a concrete cube
// state.
func FromFaceCube(fc cube.FaceCube) Pattern {
	var p Pattern
	for i, c := range fc.F {
		p.Stickers[i] = Sticker{Color: c}
	}
	return p
}

// Matches reports whether fc agrees with p at every non-wildcard position.
func (p Pattern) Matches(fc cube.FaceCube) bool {
	for i, s := range p.Stickers {
		if s.Wild {
			continue
		}
		if s.Color != fc.F[i] {
			return false
		}
	}
	return true
}

// String renders p as run-length encoded face blocks separated by '/'.
func (p Pattern) String() string {
	var sb strings.Builder
	for face := 0; face < 6; face++ {
		if face > 0 {
			sb.WriteString("/")
		}
		sb.WriteString(faceRun(p.Stickers[face*9 : face*9+9]))
	}
	return sb.String()
}

func faceRun(stickers []Sticker) string {
	var sb strings.Builder
	cur := stickers[0]
	count := 1
	flush := func() {
		sb.WriteString(stickerByte(cur))
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	for i := 1; i < len(stickers); i++ {
		if stickers[i] == cur {
			count++
			continue
		}
		flush()
		cur = stickers[i]
		count = 1
	}
	flush()
	return sb.String()
}

func stickerByte(s Sticker) string {
	if s.Wild {
		return "?"
	}
	return s.Color.String()
}

var runToken = regexp.MustCompile(`([URFDLB?])(\d*)`)

// ParsePattern parses a CFEN pattern string, 6 face blocks separated by '/'
// in U-R-F-D-L-B order.
func ParsePattern(s string) (Pattern, error) {
	blocks := strings.Split(s, "/")
	if len(blocks) != 6 {
		return Pattern{}, wrapf("pattern must have 6 faces separated by '/', got %d", len(blocks))
	}

	var p Pattern
	for face, block := range blocks {
		stickers, err := parseFaceBlock(block)
		if err != nil {
			return Pattern{}, wrapf("face %d (%s): %v", face, faceLetter(face), err)
		}
		if len(stickers) != 9 {
			return Pattern{}, wrapf("face %d (%s) has %d stickers, expected 9", face, faceLetter(face), len(stickers))
		}
		copy(p.Stickers[face*9:face*9+9], stickers)
	}
	return p, nil
}

func faceLetter(face int) string {
	return []string{"U", "R", "F", "D", "L", "B"}[face]
}

func parseFaceBlock(block string) ([]Sticker, error) {
	matches := runToken.FindAllStringSubmatch(block, -1)
	if len(matches) == 0 {
		return nil, wrapf("no sticker tokens found in %q", block)
	}

	var consumed strings.Builder
	var stickers []Sticker
	for _, m := range matches {
		consumed.WriteString(m[0])
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return nil, wrapf("invalid run count %q", m[2])
			}
			count = n
		}

		var sticker Sticker
		if m[1] == "?" {
			sticker = Sticker{Wild: true}
		} else {
			c, err := cube.ParseColor(m[1][0])
			if err != nil {
				return nil, err
			}
			sticker = Sticker{Color: c}
		}
		for i := 0; i < count; i++ {
			stickers = append(stickers, sticker)
		}
	}
	if consumed.String() != block {
		return nil, wrapf("could not parse entire face block %q", block)
	}
	return stickers, nil
}

func wrapf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{cubeerr.ErrInvalidFaceletString}, args...)...)
}
