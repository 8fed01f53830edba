package main

import "testing"

const sampleOrigami = `
6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestFoldPaper(t *testing.T) {
	dots, folds := parseOrigami(testBlocks(sampleOrigami))
	if len(dots) != 18 || len(folds) != 2 {
		t.Fatalf("parsed %v dots, %v folds, want 18, 2", len(dots), len(folds))
	}
	dots = foldPaper(dots, folds[0])
	if len(dots) != 17 {
		t.Errorf("dots after first fold = %v, want 17", len(dots))
	}
	dots = foldPaper(dots, folds[1])
	if len(dots) != 16 {
		t.Errorf("dots after second fold = %v, want 16", len(dots))
	}
	want := `#####
#...#
#...#
#...#
#####
`
	if got := renderDots(dots); got != want {
		t.Errorf("rendered dots:\n%vwant:\n%v", got, want)
	}
}
