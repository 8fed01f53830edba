package main

import (
	"testing"

	aoc "github.com/zargony/advent-of-code-2021"
)

const sampleHeightmap = `
2199943210
3987894921
9856789892
8767896789
9899965678
`

func TestLowPoints(t *testing.T) {
	g := aoc.DigitGrid(testLines(sampleHeightmap))
	pts := lowPoints(g)
	want := []aoc.Pt{{X: 1, Y: 0}, {X: 9, Y: 0}, {X: 2, Y: 2}, {X: 6, Y: 4}}
	if len(pts) != len(want) {
		t.Fatalf("lowPoints = %v, want %v", pts, want)
	}
	risk := 0
	for i, p := range pts {
		if p != want[i] {
			t.Errorf("lowPoints[%d] = %v, want %v", i, p, want[i])
		}
		risk += g.At(p) + 1
	}
	if risk != 15 {
		t.Errorf("total risk = %v, want 15", risk)
	}
}

func TestTopBasinsFactor(t *testing.T) {
	g := aoc.DigitGrid(testLines(sampleHeightmap))
	if got := topBasinsFactor(g); got != 1134 {
		t.Errorf("topBasinsFactor = %v, want 1134", got)
	}
}
