package main

import (
	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=26397

[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
*/
func (s solver) D10p1() any {
	total := 0
	s.ForLines(func(line string) {
		corrupt, _ := checkChunks(line)
		total += corruptScore[corrupt]
	})
	return total
}

// want=288957
func (s solver) D10p2() any {
	var scores []int
	s.ForLines(func(line string) {
		corrupt, completion := checkChunks(line)
		if corrupt != 0 || len(completion) == 0 {
			return
		}
		score := 0
		for _, r := range completion {
			score = score*5 + completeScore[r]
		}
		scores = append(scores, score)
	})
	return aoc.Median(scores)
}

var (
	chunkPairs    = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}
	corruptScore  = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completeScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// checkChunks parses a line of chunks. For a corrupted line it returns
// the first mismatched closer; for an incomplete line the closers that
// would complete it, innermost first.
func checkChunks(line string) (corrupt rune, completion []rune) {
	var open aoc.Stack[rune]
	for _, r := range line {
		if closer, ok := chunkPairs[r]; ok {
			open.Push(closer)
			continue
		}
		expected, ok := open.Pop()
		if !ok || expected != r {
			return r, nil
		}
	}
	open.While(func(r rune) bool {
		completion = append(completion, r)
		return true
	})
	return 0, completion
}
