package main

import (
	"log"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=5

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func (s solver) D5p1() any {
	return countDangerAreas(parseVents(s.Lines()), false)
}

// want=12
func (s solver) D5p2() any {
	return countDangerAreas(parseVents(s.Lines()), true)
}

func parseVents(lines []string) []aoc.Segment {
	parsePt := func(s string) aoc.Pt {
		x, y, ok := strings.Cut(s, ",")
		if !ok {
			log.Fatalf("bad coordinate: %q", s)
		}
		return aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)}
	}
	var vents []aoc.Segment
	for _, line := range lines {
		from, to, ok := strings.Cut(line, " -> ")
		if !ok {
			log.Fatalf("bad vent line: %q", line)
		}
		vents = append(vents, aoc.Segment{A: parsePt(from), B: parsePt(to)})
	}
	return vents
}

// countDangerAreas counts points covered by two or more vent lines.
// Diagonal lines are only considered when diagonals is set.
func countDangerAreas(vents []aoc.Segment, diagonals bool) int {
	density := map[aoc.Pt]int{}
	for _, v := range vents {
		if !diagonals && v.Diagonal() {
			continue
		}
		for _, p := range v.Points() {
			density[p]++
		}
	}
	danger := 0
	for _, n := range density {
		if n >= 2 {
			danger++
		}
	}
	return danger
}
