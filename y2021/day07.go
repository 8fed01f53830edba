package main

import (
	"slices"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=37

16,1,2,0,4,2,7,1,2,14
*/
func (s solver) D7p1() any {
	return leastFuel(parseCrabs(s.Line()), func(d int) int { return d })
}

// want=168
func (s solver) D7p2() any {
	return leastFuel(parseCrabs(s.Line()), aoc.Triangular)
}

func parseCrabs(line string) []int {
	return aoc.Ints(strings.Split(line, ",")...)
}

// leastFuel tries every alignment position and returns the cheapest
// total fuel, with cost translating distance to fuel.
func leastFuel(positions []int, cost func(distance int) int) int {
	best := -1
	for target := 0; target <= slices.Max(positions); target++ {
		total := 0
		for _, p := range positions {
			total += cost(aoc.AbsDiff(p, target))
		}
		if best == -1 || total < best {
			best = total
		}
	}
	return best
}
