package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/cube-solver/kociemba/internal/cube"
	"github.com/cube-solver/kociemba/internal/render"
	"github.com/cube-solver/kociemba/internal/twophase"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using Kociemba's two-phase algorithm.

Provide either a scramble as a space-separated move list, or --facelet with
a 54-character facelet string. Use --headless for programmatic output (bare
space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facelet, _ := cmd.Flags().GetString("facelet")
		max, _ := cmd.Flags().GetUint8("max")
		timeoutStr, _ := cmd.Flags().GetString("timeout")
		details, _ := cmd.Flags().GetBool("details")
		headless, _ := cmd.Flags().GetBool("headless")
		tablePath, _ := cmd.Flags().GetString("table")

		if len(args) == 0 && facelet == "" {
			fmt.Fprintln(os.Stderr, "Error: provide a scramble argument or --facelet")
			os.Exit(1)
		}
		if len(args) > 0 && facelet != "" {
			fmt.Fprintln(os.Stderr, "Error: provide only one of a scramble argument or --facelet")
			os.Exit(1)
		}

		var timeout time.Duration
		if timeoutStr != "" {
			var err error
			timeout, err = time.ParseDuration(timeoutStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing --timeout: %v\n", err)
				os.Exit(1)
			}
		}

		var state cube.CubieCube
		if facelet != "" {
			fc, err := cube.ParseFaceCube(facelet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing facelet string: %v\n", err)
				os.Exit(1)
			}
			state, err = fc.ToCubieCube()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error converting facelet to cube: %v\n", err)
				os.Exit(1)
			}
		} else {
			moves, err := cube.ParseScramble(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			state = cube.Solved.ApplyMoves(moves)
		}

		if !headless {
			fmt.Println(render.Facelet(state.ToFaceCube()))
		}

		dt, err := loadOrBuildTable(tablePath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
			os.Exit(1)
		}

		var solution *twophase.Solution
		solve := func() {
			solver := twophase.NewSolver(dt, max, timeout)
			solution = solver.Solve(state)
		}
		if headless || !isInteractive() {
			solve()
		} else {
			runWithSpinner("solving...", solve)
		}

		if solution == nil {
			if headless {
				os.Exit(1)
			}
			fmt.Println("No solution found")
			os.Exit(1)
		}

		if headless {
			fmt.Print(solution.String())
			return
		}

		if details {
			fmt.Printf("Phase 1: %s\n", cube.MovesString(solution.Phase1))
			fmt.Printf("Phase 2: %s\n", cube.MovesString(solution.Phase2))
		}
		fmt.Printf("Solution: %s\n", solution.String())
		fmt.Printf("Move count: %s\n", humanize.Comma(int64(solution.Len())))
	},
}

func init() {
	solveCmd.Flags().String("facelet", "", "Solve a 54-character facelet string instead of a scramble")
	solveCmd.Flags().Uint8("max", 23, "Maximum solution length to search")
	solveCmd.Flags().String("timeout", "", "Maximum search time, e.g. 5s (default: no timeout)")
	solveCmd.Flags().Bool("details", false, "Print the phase 1 / phase 2 move breakdown")
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated solution moves")
	solveCmd.Flags().String("table", "", "Path to a precomputed table blob (default: build in memory)")
}
