package main

import (
	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=1656

5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
*/
func (s solver) D11p1() any {
	g := aoc.DigitGrid(s.Lines())
	total := 0
	for i := 0; i < 100; i++ {
		total += octopusStep(g)
	}
	return total
}

// want=195
func (s solver) D11p2() any {
	g := aoc.DigitGrid(s.Lines())
	size := g.Size()
	// After a synchronized flash the whole grid is back at zero.
	dark := aoc.MakeGrid[int](size.X, size.Y).Hash()
	for step := 1; ; step++ {
		octopusStep(g)
		if g.Hash() == dark {
			return step
		}
	}
}

// octopusStep advances the energy grid one step and returns the number
// of flashes. A cell reaching 10 flashes and raises all 8 neighbors,
// possibly cascading; flashed cells reset to 0.
func octopusStep(g aoc.Grid[int]) int {
	var flashed []aoc.Pt
	var raise func(p aoc.Pt)
	raise = func(p aoc.Pt) {
		v, ok := g.AtOk(p)
		if !ok {
			return
		}
		g.Set(p, v+1)
		if v+1 == 10 {
			flashed = append(flashed, p)
			p.ForNeighbors(func(n aoc.Pt) bool {
				raise(n)
				return true
			})
		}
	}
	g.ForPts(func(p aoc.Pt, _ int) { raise(p) })
	for _, p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}
