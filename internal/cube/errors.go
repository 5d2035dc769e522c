package cube

import (
	"fmt"

	"github.com/cube-solver/kociemba/internal/cubeerr"
)

var (
	cubeErrInvalidColor         = cubeerr.ErrInvalidColor
	cubeErrInvalidCorner        = cubeerr.ErrInvalidCorner
	cubeErrInvalidEdge          = cubeerr.ErrInvalidEdge
	cubeErrInvalidMove          = cubeerr.ErrInvalidMove
	cubeErrInvalidScramble      = cubeerr.ErrInvalidScramble
	cubeErrInvalidFaceletString = cubeerr.ErrInvalidFaceletString
	cubeErrInvalidFaceletValue  = cubeerr.ErrInvalidFaceletValue
	cubeErrInvalidCubieValue    = cubeerr.ErrInvalidCubieValue
)

func wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
