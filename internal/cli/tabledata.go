package cli

import (
	"time"

	"github.com/cube-solver/kociemba/internal/twophase"
	"github.com/sirupsen/logrus"
)

// loadOrBuildTable reads a precomputed table blob from path when non-empty,
// falling back to building the tables in memory. Building from scratch is
// slower (a few seconds) but requires no prior `table` invocation.
func loadOrBuildTable(path string, log *logrus.Logger) (*twophase.DataTable, error) {
	if path != "" {
		log.WithField("path", path).Debug("loading precomputed table")
		return twophase.ReadTableFile(path)
	}
	log.Debug("building move and pruning tables in memory")
	start := time.Now()
	dt := twophase.NewDataTable()
	log.WithField("elapsed", time.Since(start)).Debug("tables built")
	return dt, nil
}
