package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/render"
	"github.com/cube-solver/kociemba/internal/twophase"
	"github.com/spf13/cobra"
)

var scrambleCategories = map[string]twophase.ScrambleCategory{
	"random":     twophase.CategoryRandom,
	"cross":      twophase.CategoryCrossSolved,
	"f2l":        twophase.CategoryF2LSolved,
	"oll":        twophase.CategoryOLLSolved,
	"oll-cross":  twophase.CategoryOLLCrossSolved,
	"corners":    twophase.CategoryCornersSolved,
	"edges":      twophase.CategoryEdgesSolved,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble [count]",
	Short: "Generate a random scramble",
	Long: `Generate one or more random scrambles by sampling a random cube state and
inverting its two-phase solution.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count := 1
		if len(args) == 1 {
			if _, err := fmt.Sscanf(args[0], "%d", &count); err != nil || count < 1 {
				fmt.Fprintf(os.Stderr, "Error: count must be a positive integer, got %q\n", args[0])
				os.Exit(1)
			}
		}

		categoryName, _ := cmd.Flags().GetString("category")
		category, ok := scrambleCategories[categoryName]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", categoryName)
			os.Exit(1)
		}
		preview, _ := cmd.Flags().GetBool("preview")
		tablePath, _ := cmd.Flags().GetString("table")
		seed, _ := cmd.Flags().GetInt64("seed")

		dt, err := loadOrBuildTable(tablePath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
			os.Exit(1)
		}

		r := rand.New(rand.NewSource(seed))

		var scrambles [][]cube.Move
		generate := func() {
			scrambles = make([][]cube.Move, count)
			for i := 0; i < count; i++ {
				moves, err := twophase.GenerateScramble(dt, category, r, 25)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error generating scramble: %v\n", err)
					os.Exit(1)
				}
				scrambles[i] = moves
			}
		}
		if isInteractive() {
			runWithSpinner("generating scramble...", generate)
		} else {
			generate()
		}

		for i, moves := range scrambles {
			if count > 1 {
				fmt.Printf("%d: ", i+1)
			}
			fmt.Println(cube.MovesString(moves))
			if preview {
				state := cube.Solved.ApplyMoves(moves)
				fmt.Println(render.Facelet(state.ToFaceCube()))
			}
		}
	},
}

func init() {
	scrambleCmd.Flags().String("category", "random", "Scramble category: random, cross, f2l, oll, oll-cross, corners, edges")
	scrambleCmd.Flags().Bool("preview", false, "Print a color-coded facelet preview of the resulting state")
	scrambleCmd.Flags().String("table", "", "Path to a precomputed table blob (default: build in memory)")
	scrambleCmd.Flags().Int64("seed", 1, "Random seed (deterministic by default; vary for different scrambles)")
}
