package cli

import (
	"fmt"
	"os"

	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/render"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply moves to a cube and display the result",
	Long: `Twist applies a sequence of moves to a cube and shows the resulting state.
It does not solve the cube, it just applies the moves. Useful for exploring
algorithms and checking what an alg does before dropping it into a solve.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --start DRBLUURLDRBLRRBFLFFUBFFDRUDURRBDFBBULDUDLUDLBUFFDBFLRL`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetString("start")

		state := cube.Solved
		if start != "" {
			fc, err := cube.ParseFaceCube(start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing starting facelet string: %v\n", err)
				os.Exit(1)
			}
			state, err = fc.ToCubieCube()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error converting starting state: %v\n", err)
				os.Exit(1)
			}
		}

		moves, err := cube.ParseScramble(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		result := state.ApplyMoves(moves)

		fmt.Println(render.Facelet(result.ToFaceCube()))
		fmt.Printf("Moves applied: %d\n", len(moves))
		if result.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().String("start", "", "Starting state as a 54-character facelet string (default: solved)")
}
