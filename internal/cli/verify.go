package cli

import (
	"fmt"
	"os"

	"github.com/cube-solver/kociemba/internal/cfen"
	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/render"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms a start pattern into a target pattern",
	Long: `Verify checks that applying an algorithm to a start state reaches a target
state. Both states are given as CFEN patterns (run-length encoded facelets in
U/R/F/D/L/B order, '?' meaning "don't care"), so a verification can check
only the part of the cube an algorithm is supposed to affect.

Examples:
  # An all-wildcard target accepts whatever state the algorithm produces
  cube verify "R U R' U'" --target "?9/?9/?9/?9/?9/?9"

  # Sune only moves last-layer pieces: the first two layers stay solved
  cube verify "R U R' U R U2 R'" --target "?9/?3R6/?3F6/D9/?3L6/?3B6"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]
		startStr, _ := cmd.Flags().GetString("start")
		targetStr, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")

		if startStr == "" {
			startStr = cfen.FromFaceCube(cube.SolvedFace).String()
		}
		if targetStr == "" {
			targetStr = cfen.FromFaceCube(cube.SolvedFace).String()
		}

		startPattern, err := cfen.ParsePattern(startStr)
		if err != nil {
			fail(headless, "Error parsing start pattern: %v\n", err)
		}
		targetPattern, err := cfen.ParsePattern(targetStr)
		if err != nil {
			fail(headless, "Error parsing target pattern: %v\n", err)
		}

		startFace := patternToFaceCube(startPattern)
		state, err := startFace.ToCubieCube()
		if err != nil {
			fail(headless, "Error converting start pattern to a cube: %v\n", err)
		}

		if verbose && !headless {
			fmt.Println("Start state:")
			fmt.Println(render.Facelet(startFace))
		}

		moves, err := cube.ParseScramble(algorithm)
		if err != nil {
			fail(headless, "Error parsing algorithm: %v\n", err)
		}

		result := state.ApplyMoves(moves)
		resultFace := result.ToFaceCube()

		if verbose && !headless {
			fmt.Printf("\nAfter algorithm (%s):\n", algorithm)
			fmt.Println(render.Facelet(resultFace))
		}

		if targetPattern.Matches(resultFace) {
			if !headless {
				fmt.Println("PASS: algorithm reaches the target pattern")
				fmt.Printf("Algorithm: %s\n", algorithm)
				fmt.Printf("Move count: %d\n", len(moves))
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Println("FAIL: algorithm does not reach the target pattern")
			fmt.Printf("Algorithm: %s\n", algorithm)
			if !verbose {
				fmt.Println("Tip: pass --verbose to see the intermediate cube states")
			} else {
				fmt.Printf("Actual: %s\n", cfen.FromFaceCube(resultFace).String())
			}
		}
		os.Exit(1)
	},
}

// patternToFaceCube fills any wildcard sticker with its own face's solved
// color, since a start state passed to verify must be a concrete cube even
// if the caller only cares to pin down part of it.
func patternToFaceCube(p cfen.Pattern) cube.FaceCube {
	var fc cube.FaceCube
	for i, s := range p.Stickers {
		if s.Wild {
			fc.F[i] = cube.Color(i / 9)
			continue
		}
		fc.F[i] = s.Color
	}
	return fc
}

func fail(headless bool, format string, args ...any) {
	if !headless {
		fmt.Fprintf(os.Stderr, format, args...)
	}
	os.Exit(1)
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN pattern (defaults to solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN pattern (defaults to solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states and transformations")
	verifyCmd.Flags().Bool("headless", false, "Exit 0/1 only, no output")
}
