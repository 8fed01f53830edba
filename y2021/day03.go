package main

import (
	"slices"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s solver) D3p1() any {
	return powerConsumption(s.Lines())
}

// want=230
func (s solver) D3p2() any {
	return lifeSupportRating(s.Lines())
}

func countOnes(lines []string, i int) int {
	n := 0
	for _, line := range lines {
		if line[i] == '1' {
			n++
		}
	}
	return n
}

// powerConsumption is gamma times epsilon, where gamma has the most
// common bit of each column and epsilon the least common.
func powerConsumption(lines []string) int64 {
	width := len(lines[0])
	var gamma int64
	for i := 0; i < width; i++ {
		if countOnes(lines, i)*2 > len(lines) {
			gamma |= 1 << (width - 1 - i)
		}
	}
	epsilon := ^gamma & (1<<width - 1)
	return gamma * epsilon
}

// rating filters lines down to a single one by keeping, column by
// column, those with the most common bit (ties keep '1') or the least
// common bit (ties keep '0').
func rating(lines []string, mostCommon bool) int64 {
	lines = slices.Clone(lines)
	for i := 0; len(lines) > 1; i++ {
		keep := byte('0')
		if (countOnes(lines, i)*2 >= len(lines)) == mostCommon {
			keep = '1'
		}
		lines = slices.DeleteFunc(lines, func(line string) bool {
			return line[i] != keep
		})
	}
	return aoc.ParseBinary(lines[0])
}

// lifeSupportRating is the oxygen generator rating times the CO2
// scrubber rating.
func lifeSupportRating(lines []string) int64 {
	return rating(lines, true) * rating(lines, false)
}
