package cli

import (
	"fmt"
	"os"

	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Display a cube state as a color-coded facelet diagram",
	Long: `Show renders the cube resulting from applying a scramble to the solved
state, or a cube given directly as a 54-character facelet string via
--facelet.

Examples:
  cube show "R U R' U'"
  cube show --facelet DRBLUURLDRBLRRBFLFFUBFFDRUDURRBDFBBULDUDLUDLBUFFDBFLRL`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facelet, _ := cmd.Flags().GetString("facelet")

		var state cube.CubieCube
		switch {
		case facelet != "":
			fc, err := cube.ParseFaceCube(facelet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing facelet string: %v\n", err)
				os.Exit(1)
			}
			var convErr error
			state, convErr = fc.ToCubieCube()
			if convErr != nil {
				fmt.Fprintf(os.Stderr, "Error converting facelet to cube: %v\n", convErr)
				os.Exit(1)
			}
		case len(args) == 1 && args[0] != "":
			moves, err := cube.ParseScramble(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			state = cube.Solved.ApplyMoves(moves)
		default:
			state = cube.Solved
		}

		fmt.Println(render.Facelet(state.ToFaceCube()))
	},
}

func init() {
	showCmd.Flags().String("facelet", "", "Show a 54-character facelet string instead of a scramble")
}
