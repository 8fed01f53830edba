package main

import (
	"log"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=45

target area: x=20..30, y=-10..-5
*/
func (s solver) D17p1() any {
	return searchVelocities(parseTarget(s.Line())).apex
}

// want=112
func (s solver) D17p2() any {
	return searchVelocities(parseTarget(s.Line())).hits
}

// targetArea is the rectangle the probe has to hit, to the right of and
// below the launch point.
type targetArea struct {
	min, max aoc.Pt
}

func (t targetArea) contains(p aoc.Pt) bool {
	return p.X >= t.min.X && p.X <= t.max.X && p.Y >= t.min.Y && p.Y <= t.max.Y
}

func parseTarget(line string) targetArea {
	parseRange := func(s string) (int, int) {
		from, to, ok := strings.Cut(s, "..")
		if !ok {
			log.Fatalf("bad target range: %q", s)
		}
		return aoc.Int(from), aoc.Int(to)
	}
	xs, ys, ok := strings.Cut(aoc.TrimPrefix(line, "target area: x="), ", y=")
	if !ok {
		log.Fatalf("bad target area: %q", line)
	}
	var t targetArea
	t.min.X, t.max.X = parseRange(xs)
	t.min.Y, t.max.Y = parseRange(ys)
	return t
}

// launch shoots a probe with the given initial velocity and returns the
// apex of its trajectory if it hits the target. Drag pulls the x
// velocity towards 0, gravity decreases the y velocity each step.
func launch(v aoc.Pt, t targetArea) (apex int, hit bool) {
	var p aoc.Pt
	for p.X <= t.max.X && p.Y >= t.min.Y {
		p.X += v.X
		p.Y += v.Y
		if v.X > 0 {
			v.X--
		}
		v.Y--
		apex = max(apex, p.Y)
		if t.contains(p) {
			return apex, true
		}
	}
	return 0, false
}

type probeStats struct {
	apex int
	hits int
}

// searchVelocities tries all plausible initial velocities and returns
// the highest apex of any hit and the number of hitting velocities.
// x velocities beyond the target overshoot in one step, y velocities
// beyond -min.Y pass the target depth in one step after falling back.
func searchVelocities(t targetArea) probeStats {
	vxs := make([]int, 0, t.max.X)
	for vx := 1; vx <= t.max.X; vx++ {
		vxs = append(vxs, vx)
	}
	return aoc.ParallelMapFold(vxs,
		func(vx int) probeStats {
			var st probeStats
			for vy := t.min.Y; vy <= -t.min.Y; vy++ {
				if apex, hit := launch(aoc.Pt{X: vx, Y: vy}, t); hit {
					st.hits++
					st.apex = max(st.apex, apex)
				}
			}
			return st
		},
		func(acc, st probeStats) probeStats {
			return probeStats{apex: max(acc.apex, st.apex), hits: acc.hits + st.hits}
		},
		probeStats{})
}
