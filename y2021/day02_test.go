package main

import "testing"

const sampleCourse = `
forward 5
down 5
forward 8
up 3
down 8
forward 2
`

func TestDive(t *testing.T) {
	simple, aimed := dive(testLines(sampleCourse))
	if simple != 150 {
		t.Errorf("simple = %v, want 150", simple)
	}
	if aimed != 900 {
		t.Errorf("aimed = %v, want 900", aimed)
	}
}
