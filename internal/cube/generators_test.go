package cube

import (
	"math/rand"
	"testing"
)

func TestRandomStateIsSolvable(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		c := RandomState(r)
		if !c.IsSolvable() {
			t.Fatalf("RandomState produced unsolvable cube: %+v", c)
		}
	}
}

func TestRandomStateCornersSolved(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		c := RandomStateCornersSolved(r)
		if c.CP != Solved.CP || c.CO != Solved.CO {
			t.Fatalf("corners not solved: %+v", c)
		}
		if !c.IsSolvable() {
			t.Fatalf("unsolvable state: %+v", c)
		}
	}
}

func TestRandomStateEdgesSolved(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		c := RandomStateEdgesSolved(r)
		if c.EP != Solved.EP || c.EO != Solved.EO {
			t.Fatalf("edges not solved: %+v", c)
		}
		if !c.IsSolvable() {
			t.Fatalf("unsolvable state: %+v", c)
		}
	}
}

func TestRandomStateF2LSolved(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		c := RandomStateF2LSolved(r)
		if c.CP[4] != DFL || c.CP[5] != DFR || c.CP[6] != DBR || c.CP[7] != DBL {
			t.Fatalf("bottom layer corners not fixed: %+v", c.CP)
		}
		if !c.IsSolvable() {
			t.Fatalf("unsolvable state: %+v", c)
		}
	}
}

func TestRandomStateOLLCrossSolved(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		c := RandomStateOLLCrossSolved(r)
		if c.EO != Solved.EO {
			t.Fatalf("edge orientation not solved: %+v", c.EO)
		}
		if !c.IsSolvable() {
			t.Fatalf("unsolvable state: %+v", c)
		}
	}
}
