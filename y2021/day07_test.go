package main

import (
	"testing"

	aoc "github.com/zargony/advent-of-code-2021"
)

func TestLeastFuel(t *testing.T) {
	crabs := parseCrabs("16,1,2,0,4,2,7,1,2,14")
	if got := leastFuel(crabs, func(d int) int { return d }); got != 37 {
		t.Errorf("linear fuel = %v, want 37", got)
	}
	if got := leastFuel(crabs, aoc.Triangular); got != 168 {
		t.Errorf("triangular fuel = %v, want 168", got)
	}
}
