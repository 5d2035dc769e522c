package twophase

import (
	"math/rand"
	"testing"
)

func newSeededRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(1))
}
