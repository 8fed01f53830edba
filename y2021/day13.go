package main

import (
	"log"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=17

6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
*/
func (s solver) D13p1() any {
	dots, folds := parseOrigami(s.Blocks())
	return len(foldPaper(dots, folds[0]))
}

// want=16
func (s solver) D13p2() any {
	dots, folds := parseOrigami(s.Blocks())
	for _, f := range folds {
		dots = foldPaper(dots, f)
	}
	// The remaining dots form the activation code letters.
	s.Debugf("%s", renderDots(dots))
	return len(dots)
}

type fold struct {
	axis byte // 'x' or 'y'
	pos  int
}

func parseOrigami(blocks [][]string) (map[aoc.Pt]bool, []fold) {
	dots := map[aoc.Pt]bool{}
	for _, line := range blocks[0] {
		x, y, ok := strings.Cut(line, ",")
		if !ok {
			log.Fatalf("bad dot: %q", line)
		}
		dots[aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)}] = true
	}
	var folds []fold
	for _, line := range blocks[1] {
		axis, pos, ok := strings.Cut(aoc.TrimPrefix(line, "fold along "), "=")
		if !ok || (axis != "x" && axis != "y") {
			log.Fatalf("bad fold: %q", line)
		}
		folds = append(folds, fold{axis: axis[0], pos: aoc.Int(pos)})
	}
	return dots, folds
}

// foldPaper mirrors all dots beyond the fold line onto the near side.
func foldPaper(dots map[aoc.Pt]bool, f fold) map[aoc.Pt]bool {
	out := make(map[aoc.Pt]bool, len(dots))
	for p := range dots {
		switch {
		case f.axis == 'x' && p.X > f.pos:
			p.X = 2*f.pos - p.X
		case f.axis == 'y' && p.Y > f.pos:
			p.Y = 2*f.pos - p.Y
		}
		out[p] = true
	}
	return out
}

func renderDots(dots map[aoc.Pt]bool) string {
	var size aoc.Pt
	for p := range dots {
		size.X = max(size.X, p.X+1)
		size.Y = max(size.Y, p.Y+1)
	}
	var sb strings.Builder
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if dots[aoc.Pt{X: x, Y: y}] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
