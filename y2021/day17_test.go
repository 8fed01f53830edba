package main

import (
	"testing"

	aoc "github.com/zargony/advent-of-code-2021"
)

const sampleTarget = "target area: x=20..30, y=-10..-5"

func TestParseTarget(t *testing.T) {
	ta := parseTarget(sampleTarget)
	want := targetArea{min: aoc.Pt{X: 20, Y: -10}, max: aoc.Pt{X: 30, Y: -5}}
	if ta != want {
		t.Errorf("parseTarget = %+v, want %+v", ta, want)
	}
	if !ta.contains(aoc.Pt{X: 28, Y: -7}) || ta.contains(aoc.Pt{X: 19, Y: -7}) {
		t.Error("contains misclassifies points around the target")
	}
}

func TestLaunch(t *testing.T) {
	ta := parseTarget(sampleTarget)
	tests := []struct {
		v    aoc.Pt
		apex int
		hit  bool
	}{
		{aoc.Pt{X: 7, Y: 2}, 3, true},
		{aoc.Pt{X: 6, Y: 3}, 6, true},
		{aoc.Pt{X: 9, Y: 0}, 0, true},
		{aoc.Pt{X: 6, Y: 9}, 45, true},
		{aoc.Pt{X: 17, Y: -4}, 0, false},
	}
	for _, tt := range tests {
		apex, hit := launch(tt.v, ta)
		if apex != tt.apex || hit != tt.hit {
			t.Errorf("launch(%v) = %v, %v, want %v, %v", tt.v, apex, hit, tt.apex, tt.hit)
		}
	}
}

func TestSearchVelocities(t *testing.T) {
	st := searchVelocities(parseTarget(sampleTarget))
	if st.apex != 45 {
		t.Errorf("apex = %v, want 45", st.apex)
	}
	if st.hits != 112 {
		t.Errorf("hits = %v, want 112", st.hits)
	}
}
