// Package render prints cube facelet state to a terminal using lipgloss
// color styles, generalizing the teacher's ANSI-escape ColoredString
// helper into a reusable style table keyed by cube.Color.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cube-solver/kociemba/internal/cube"
)

var colorStyles = map[cube.Color]lipgloss.Style{
	cube.ColorU: lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")), // white
	cube.ColorR: lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0")),   // red
	cube.ColorF: lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),  // green
	cube.ColorD: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),  // yellow
	cube.ColorL: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")), // orange
	cube.ColorB: lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0")),  // blue
}

func styledSticker(c cube.Color) string {
	return colorStyles[c].Render(" " + c.String() + " ")
}

// Facelet renders a 54-sticker cube as an unfolded cross layout:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	      D D D
//	      D D D
//	      D D D
func Facelet(fc cube.FaceCube) string {
	var b strings.Builder
	face := func(start int, row int) string {
		s := make([]string, 3)
		for i := 0; i < 3; i++ {
			s[i] = styledSticker(fc.F[start+row*3+i])
		}
		return strings.Join(s, "")
	}
	blank := strings.Repeat(" ", 12)

	for row := 0; row < 3; row++ {
		b.WriteString(blank)
		b.WriteString(face(0, row)) // U
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(face(36, row)) // L
		b.WriteString(face(18, row)) // F
		b.WriteString(face(9, row))  // R
		b.WriteString(face(45, row)) // B
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(blank)
		b.WriteString(face(27, row)) // D
		b.WriteString("\n")
	}
	return b.String()
}
