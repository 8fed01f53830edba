package aoc

import (
	"log"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// ParseBinary parses a binary string.
func ParseBinary(in string) int64 {
	return MustGet(strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64))
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Triangular returns the n-th triangular number 1+2+...+n.
func Triangular(n int) int {
	return n * (n + 1) / 2
}

// Median returns the middle value of the numbers.
// It panics if nums is empty.
func Median[T Number](nums []T) T {
	s := slices.Clone(nums)
	slices.Sort(s)
	return s[len(s)/2]
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	if len(integers) == 1 {
		return integers[0]
	}

	lcm := func(a, b int) int {
		return a * b / GCD(a, b)
	}

	result := 1
	for i := 0; i < len(integers); i++ {
		result = lcm(result, integers[i])
	}

	return result
}
