package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isInteractive reports whether stdout is an attached terminal, used to
// decide whether `solve`/`scramble` show an animated spinner.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
