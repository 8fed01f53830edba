package main

import "testing"

const samplePolymer = `
NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
NC -> B
NB -> B
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
`

func TestPolymerScore(t *testing.T) {
	template, rules := parsePolymer(testBlocks(samplePolymer))
	if template != "NNCB" {
		t.Fatalf("template = %q, want NNCB", template)
	}
	if len(rules) != 16 {
		t.Fatalf("parsed %v rules, want 16", len(rules))
	}
	tests := []struct {
		steps, want int
	}{
		{10, 1588},
		{40, 2188189693529},
	}
	for _, tt := range tests {
		if got := polymerScore(template, rules, tt.steps); got != tt.want {
			t.Errorf("polymerScore after %v steps = %v, want %v", tt.steps, got, tt.want)
		}
	}
}
