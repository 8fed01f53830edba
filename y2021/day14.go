package main

import (
	"log"
	"math"
	"strings"
)

/*
want=1588
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
*/
func (s solver) D14p1() any {
	template, rules := parsePolymer(s.Blocks())
	return polymerScore(template, rules, 10)
}

// want=2188189693529
func (s solver) D14p2() any {
	template, rules := parsePolymer(s.Blocks())
	return polymerScore(template, rules, 40)
}

type elementPair [2]byte

func parsePolymer(blocks [][]string) (template string, rules map[elementPair]byte) {
	template = blocks[0][0]
	rules = map[elementPair]byte{}
	for _, line := range blocks[1] {
		left, right, ok := strings.Cut(line, " -> ")
		if !ok || len(left) != 2 || len(right) != 1 {
			log.Fatalf("bad insertion rule: %q", line)
		}
		rules[elementPair{left[0], left[1]}] = right[0]
	}
	return template, rules
}

// polymerScore applies the insertion rules the given number of steps
// and returns the count of the most common element minus the count of
// the least common one. The polymer is tracked as pair counts; the
// full string would grow exponentially.
func polymerScore(template string, rules map[elementPair]byte, steps int) int {
	pairs := map[elementPair]int{}
	for i := 0; i+1 < len(template); i++ {
		pairs[elementPair{template[i], template[i+1]}]++
	}

	for ; steps > 0; steps-- {
		next := make(map[elementPair]int, len(pairs))
		for p, n := range pairs {
			if ins, ok := rules[p]; ok {
				next[elementPair{p[0], ins}] += n
				next[elementPair{ins, p[1]}] += n
			} else {
				next[p] += n
			}
		}
		pairs = next
	}

	// Counting the first element of every pair counts each element
	// once, except the final one, which insertions never change.
	counts := map[byte]int{template[len(template)-1]: 1}
	for p, n := range pairs {
		counts[p[0]] += n
	}
	least, most := math.MaxInt, 0
	for _, n := range counts {
		least = min(least, n)
		most = max(most, n)
	}
	return most - least
}
