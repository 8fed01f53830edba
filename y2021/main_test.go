package main

import "strings"

// Test inputs are kept as raw strings, like the puzzle descriptions
// show them.

func testLines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func testBlocks(s string) [][]string {
	var blocks [][]string
	for _, b := range strings.Split(strings.TrimSpace(s), "\n\n") {
		blocks = append(blocks, testLines(b))
	}
	return blocks
}
