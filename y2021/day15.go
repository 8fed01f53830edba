package main

import (
	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=40

1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
*/
func (s solver) D15p1() any {
	return lowestRisk(aoc.DigitGrid(s.Lines()))
}

// want=315
func (s solver) D15p2() any {
	return lowestRisk(enlarge(aoc.DigitGrid(s.Lines()), 5))
}

// lowestRisk returns the total risk of the safest path from the top
// left to the bottom right corner. Entering a cell costs its risk
// level. Dijkstra over the grid.
func lowestRisk(g aoc.Grid[int]) int {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	dist := map[aoc.Pt]int{{}: 0}
	done := map[aoc.Pt]bool{}
	pq := aoc.MinQueue[aoc.Pt]()
	pq.Push(&aoc.PQI[aoc.Pt]{V: aoc.Pt{}, P: 0})
	for pq.Len() > 0 {
		cur := pq.Pop()
		if done[cur.V] {
			continue
		}
		done[cur.V] = true
		if cur.V == end {
			return cur.P
		}
		cur.V.ForImmediateNeighbors(func(n aoc.Pt) bool {
			risk, ok := g.AtOk(n)
			if !ok || done[n] {
				return true
			}
			if d, seen := dist[n]; !seen || cur.P+risk < d {
				dist[n] = cur.P + risk
				pq.Push(&aoc.PQI[aoc.Pt]{V: n, P: cur.P + risk})
			}
			return true
		})
	}
	return -1
}

// enlarge tiles the map factor times in both directions. Each tile adds
// its tile distance to the risk levels, wrapping 9 back to 1.
func enlarge(g aoc.Grid[int], factor int) aoc.Grid[int] {
	size := g.Size()
	out := aoc.MakeGrid[int](size.X*factor, size.Y*factor)
	for y := range out {
		for x := range out[y] {
			risk := g[y%size.Y][x%size.X] + x/size.X + y/size.Y
			out[y][x] = (risk-1)%9 + 1
		}
	}
	return out
}
