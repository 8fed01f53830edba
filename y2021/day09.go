package main

import (
	"slices"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=15

2199943210
3987894921
9856789892
8767896789
9899965678
*/
func (s solver) D9p1() any {
	g := aoc.DigitGrid(s.Lines())
	risk := 0
	for _, p := range lowPoints(g) {
		risk += g.At(p) + 1
	}
	return risk
}

// want=1134
func (s solver) D9p2() any {
	g := aoc.DigitGrid(s.Lines())
	return topBasinsFactor(g)
}

// lowPoints returns all points lower than all their orthogonal
// neighbors.
func lowPoints(g aoc.Grid[int]) []aoc.Pt {
	var pts []aoc.Pt
	g.ForPts(func(p aoc.Pt, h int) {
		low := true
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if nh, ok := g.AtOk(n); ok && nh <= h {
				low = false
				return false
			}
			return true
		})
		if low {
			pts = append(pts, p)
		}
	})
	return pts
}

// topBasinsFactor multiplies the sizes of the three largest basins.
// Basins are regions below height 9; height 9 separates them, so a
// flood fill from each low point measures one basin.
func topBasinsFactor(g aoc.Grid[int]) int {
	size := g.Size()
	basins := aoc.MakeGrid[byte](size.X, size.Y)
	g.ForPts(func(p aoc.Pt, h int) {
		if h < 9 {
			basins.Set(p, '.')
		} else {
			basins.Set(p, '#')
		}
	})

	var sizes []int
	for _, p := range lowPoints(g) {
		if n := aoc.FloodFill(basins, p, '.', '#'); n > 0 {
			sizes = append(sizes, n)
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes[0] * sizes[1] * sizes[2]
}
