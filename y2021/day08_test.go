package main

import (
	"math/bits"
	"testing"
)

const sampleDisplays = `
be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
`

func TestDisplayValue(t *testing.T) {
	d := parseDisplays([]string{"acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"})[0]
	if got := d.value(); got != 5353 {
		t.Errorf("value = %v, want 5353", got)
	}

	wants := []int{8394, 9781, 1197, 9361, 4873, 8418, 4548, 1625, 8717, 4315}
	for i, d := range parseDisplays(testLines(sampleDisplays)) {
		if got := d.value(); got != wants[i] {
			t.Errorf("display %d value = %v, want %v", i, got, wants[i])
		}
	}
}

func TestSimpleDigits(t *testing.T) {
	n := 0
	for _, d := range parseDisplays(testLines(sampleDisplays)) {
		for _, out := range d.outputs {
			switch bits.OnesCount8(uint8(out)) {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	if n != 26 {
		t.Errorf("simple digits = %v, want 26", n)
	}
}
