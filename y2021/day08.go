package main

import (
	"log"
	"math/bits"
	"strings"
)

/*
want=26

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
*/
func (s solver) D8p1() any {
	n := 0
	for _, d := range parseDisplays(s.Lines()) {
		for _, out := range d.outputs {
			switch bits.OnesCount8(uint8(out)) {
			case 2, 3, 4, 7: // 1, 7, 4, 8
				n++
			}
		}
	}
	return n
}

// want=61229
func (s solver) D8p2() any {
	sum := 0
	for _, d := range parseDisplays(s.Lines()) {
		sum += d.value()
	}
	return sum
}

// segments is a bitmask of the active wires a through g.
type segments uint8

func parseSegments(s string) segments {
	var m segments
	for _, c := range s {
		if c < 'a' || c > 'g' {
			log.Fatalf("bad segment: %q", s)
		}
		m |= 1 << (c - 'a')
	}
	return m
}

type display struct {
	patterns []segments // the ten observed digit patterns
	outputs  []segments // the four output digits
}

func parseDisplays(lines []string) []display {
	parseAll := func(s string) []segments {
		var out []segments
		for _, f := range strings.Fields(s) {
			out = append(out, parseSegments(f))
		}
		return out
	}
	var displays []display
	for _, line := range lines {
		pats, outs, ok := strings.Cut(line, " | ")
		if !ok {
			log.Fatalf("bad display entry: %q", line)
		}
		d := display{patterns: parseAll(pats), outputs: parseAll(outs)}
		if len(d.patterns) != 10 || len(d.outputs) != 4 {
			log.Fatalf("bad display entry: %q", line)
		}
		displays = append(displays, d)
	}
	return displays
}

// pattern returns the observed pattern with n active segments. Only
// unique for the digits 1 (2 segments) and 4 (4 segments).
func (d display) pattern(n int) segments {
	for _, p := range d.patterns {
		if bits.OnesCount8(uint8(p)) == n {
			return p
		}
	}
	log.Fatalf("no pattern with %d segments", n)
	return 0
}

// decode determines the digit of a scrambled pattern. The segment count
// plus the overlaps with the 1 and 4 patterns identify every digit.
func decode(p, one, four segments) int {
	ov1 := bits.OnesCount8(uint8(p & one))
	ov4 := bits.OnesCount8(uint8(p & four))
	switch n := bits.OnesCount8(uint8(p)); {
	case n == 2:
		return 1
	case n == 3:
		return 7
	case n == 4:
		return 4
	case n == 7:
		return 8
	case n == 5 && ov1 == 1 && ov4 == 2:
		return 2
	case n == 5 && ov1 == 1 && ov4 == 3:
		return 5
	case n == 5 && ov1 == 2:
		return 3
	case n == 6 && ov1 == 1:
		return 6
	case n == 6 && ov4 == 3:
		return 0
	default: // n == 6 && ov4 == 4
		return 9
	}
}

// value is the four digit output of the display.
func (d display) value() int {
	one, four := d.pattern(2), d.pattern(4)
	v := 0
	for _, out := range d.outputs {
		v = v*10 + decode(out, one, four)
	}
	return v
}
