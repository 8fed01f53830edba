package main

import (
	"log"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=10

start-A
start-b
A-c
A-b
b-d
A-end
b-end
*/
func (s solver) D12p1() any {
	g := parseCaves(s.Lines())
	return g.NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		return bigCave(x) || visited[x] == 0
	})
}

// want=36
func (s solver) D12p2() any {
	g := parseCaves(s.Lines())
	return g.NumPathsWithRestriction("start", "end", smallCaveTwice)
}

func parseCaves(lines []string) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, line := range lines {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			log.Fatalf("bad cave connection: %q", line)
		}
		g.AddEdge(a, b, 1)
	}
	return &g
}

func bigCave(name string) bool {
	return name == strings.ToUpper(name)
}

// smallCaveTwice allows big caves freely and a single small cave to be
// entered a second time, but never start.
func smallCaveTwice(x string, visited map[string]int) bool {
	if bigCave(x) || visited[x] == 0 {
		return true
	}
	if x == "start" {
		return false
	}
	for cave, n := range visited {
		if !bigCave(cave) && n > 1 {
			return false
		}
	}
	return true
}
