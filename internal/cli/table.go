package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/cube-solver/kociemba/internal/twophase"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table <path>",
	Short: "Precompute the move and pruning tables and write them to a blob",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		var dt *twophase.DataTable
		build := func() {
			start := time.Now()
			dt = twophase.NewDataTable()
			log.WithField("elapsed", time.Since(start)).Info("tables built")
		}
		if isInteractive() {
			runWithSpinner("building tables...", build)
		} else {
			build()
		}

		if err := twophase.WriteTableFile(path, dt); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
			os.Exit(1)
		}

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error stat-ing table file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
	},
}
