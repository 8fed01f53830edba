package main

import (
	"testing"

	aoc "github.com/zargony/advent-of-code-2021"
)

const sampleOctopuses = `
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
`

func TestOctopusStep(t *testing.T) {
	g := aoc.DigitGrid(testLines(sampleOctopuses))
	want := []int{0, 35, 45, 16, 8, 1, 7, 24, 39, 29}
	total := 0
	for i, w := range want {
		got := octopusStep(g)
		if got != w {
			t.Errorf("step %d: %v flashes, want %v", i+1, got, w)
		}
		total += got
	}
	if total != 204 {
		t.Errorf("flashes after 10 steps = %v, want 204", total)
	}
	for i := len(want); i < 100; i++ {
		total += octopusStep(g)
	}
	if total != 1656 {
		t.Errorf("flashes after 100 steps = %v, want 1656", total)
	}
}

func TestOctopusSync(t *testing.T) {
	g := aoc.DigitGrid(testLines(sampleOctopuses))
	size := g.Size()
	dark := aoc.MakeGrid[int](size.X, size.Y).Hash()
	for step := 1; step <= 200; step++ {
		octopusStep(g)
		if g.Hash() == dark {
			if step != 195 {
				t.Errorf("synchronized at step %v, want 195", step)
			}
			return
		}
	}
	t.Error("no synchronized flash within 200 steps")
}
