package main

import (
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=5934

3,4,3,1,2
*/
func (s solver) D6p1() any {
	return lanternfish(parseFish(s.Line()), 80)
}

// want=26984457539
func (s solver) D6p2() any {
	return lanternfish(parseFish(s.Line()), 256)
}

// parseFish groups the fish by spawn timer. The population only ever
// matters as counts per timer value.
func parseFish(line string) (timers [9]int) {
	for _, t := range aoc.Ints(strings.Split(line, ",")...) {
		timers[t]++
	}
	return timers
}

// lanternfish returns the population size after the given number of
// days. Each day every timer decreases; fish at 0 restart at 6 and
// spawn an offspring starting at 8.
func lanternfish(timers [9]int, days int) int {
	for ; days > 0; days-- {
		spawning := timers[0]
		copy(timers[:], timers[1:])
		timers[6] += spawning
		timers[8] = spawning
	}
	return aoc.Sum(timers[:]...)
}
