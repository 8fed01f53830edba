package main

import (
	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s solver) D1p1() any {
	return countIncreasing(aoc.Ints(s.Lines()...), 1)
}

// want=5
func (s solver) D1p2() any {
	return countIncreasing(aoc.Ints(s.Lines()...), 3)
}

// countIncreasing counts positions where the sum of the window of w
// depths increases. Adjacent windows share all but one value, so
// comparing the values w apart is enough.
func countIncreasing(depths []int, w int) int {
	n := 0
	for i := w; i < len(depths); i++ {
		if depths[i] > depths[i-w] {
			n++
		}
	}
	return n
}
