package twophase

import "github.com/cube-solver/kociemba/internal/cube"

func coTableLen() int     { return cube.COCount }
func eoTableLen() int     { return cube.EOCount }
func eComboTableLen() int { return cube.ECount }
func cpTableLen() int     { return cube.CPCount }
func udepTableLen() int   { return cube.UDEPCount }
func eepTableLen() int    { return cube.EEPCount }
