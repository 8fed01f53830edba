package main

import (
	"log"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s solver) D2p1() any {
	simple, _ := dive(s.Lines())
	return simple
}

// want=900
func (s solver) D2p2() any {
	_, aimed := dive(s.Lines())
	return aimed
}

// dive runs the course and returns position times depth for both
// readings of the commands: down/up changing depth directly, and
// down/up changing aim.
func dive(course []string) (simple, aimed int) {
	var pos, depth, aim, aimedDepth int
	for _, line := range course {
		dir, arg, ok := strings.Cut(line, " ")
		if !ok {
			log.Fatalf("bad movement: %q", line)
		}
		n := aoc.Int(arg)
		switch dir {
		case "forward":
			pos += n
			aimedDepth += aim * n
		case "down":
			depth += n
			aim += n
		case "up":
			depth -= n
			aim -= n
		default:
			log.Fatalf("bad movement: %q", line)
		}
	}
	return pos * depth, pos * aimedDepth
}
