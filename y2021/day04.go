package main

import (
	"log"
	"strings"

	aoc "github.com/zargony/advent-of-code-2021"
)

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
8  2 23  4 24
21  9 14 16  7
6 10  3 18  5
1 12 20 15 19

3 15  0  2 22
9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
2  0 12  3  7
*/
func (s solver) D4p1() any {
	first, _ := playBingo(s.Blocks())
	return first
}

// want=1924
func (s solver) D4p2() any {
	_, last := playBingo(s.Blocks())
	return last
}

type bingoBoard struct {
	nums  [5][5]int
	marks [5][5]bool
	won   bool
}

func parseBoard(lines []string) *bingoBoard {
	if len(lines) != 5 {
		log.Fatalf("bingo board with %d rows", len(lines))
	}
	var b bingoBoard
	for y, line := range lines {
		row := aoc.Ints(strings.Fields(line)...)
		if len(row) != 5 {
			log.Fatalf("bad bingo row: %q", line)
		}
		copy(b.nums[y][:], row)
	}
	return &b
}

// mark marks n on the board and reports whether that completed a row
// or column.
func (b *bingoBoard) mark(n int) bool {
	for y := range b.nums {
		for x := range b.nums[y] {
			if b.nums[y][x] != n {
				continue
			}
			b.marks[y][x] = true
			full := func(x, y int) bool {
				row, col := true, true
				for i := 0; i < 5; i++ {
					row = row && b.marks[y][i]
					col = col && b.marks[i][x]
				}
				return row || col
			}
			if full(x, y) {
				return true
			}
		}
	}
	return false
}

// score is the sum of all unmarked numbers times the last drawn number.
func (b *bingoBoard) score(last int) int {
	sum := 0
	for y := range b.nums {
		for x := range b.nums[y] {
			if !b.marks[y][x] {
				sum += b.nums[y][x]
			}
		}
	}
	return sum * last
}

// playBingo plays all boards through the drawn numbers and returns the
// scores of the first and the last board to win.
func playBingo(blocks [][]string) (first, last int) {
	draws := aoc.Ints(strings.Split(blocks[0][0], ",")...)
	var boards []*bingoBoard
	for _, block := range blocks[1:] {
		boards = append(boards, parseBoard(block))
	}

	for _, n := range draws {
		for _, b := range boards {
			if b.won || !b.mark(n) {
				continue
			}
			b.won = true
			score := b.score(n)
			if first == 0 {
				first = score
			}
			last = score
		}
	}
	return first, last
}
