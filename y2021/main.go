// Advent of Code 2021 solutions, one file per day.
package main

import (
	"embed"

	aoc "github.com/zargony/advent-of-code-2021"
)

//go:embed *.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	aoc.Run(2021, sources, &solver{})
}
