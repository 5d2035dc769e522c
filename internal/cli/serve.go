package cli

import (
	"fmt"
	"os"

	"github.com/cube-solver/kociemba/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Serve starts a small HTTP API around the solver: POST /api/solve,
POST /api/scramble, GET /api/health, and GET /api/history, plus a minimal
browser page at /.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		historyPath, _ := cmd.Flags().GetString("history")

		server, err := web.NewServer(historyPath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
			os.Exit(1)
		}
		defer server.Close()

		addr := host + ":" + port
		fmt.Printf("Listening on http://%s\n", addr)
		if err := server.Start(addr); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().String("history", "cube-history.db", "Path to the solve-history SQLite database")
}
