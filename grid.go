package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForImmediateNeighbors calls f for the 4 orthogonal neighbors of p.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for all 8 neighbors of p.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// Diagonal reports whether s is neither horizontal nor vertical.
func (s Segment) Diagonal() bool {
	return s.A.X != s.B.X && s.A.Y != s.B.Y
}

// Points returns all lattice points from A to B inclusive. The segment
// must be horizontal, vertical, or 45° diagonal.
func (s Segment) Points() []Pt {
	pts := []Pt{s.A}
	for p := s.A; p != s.B; {
		p = p.Toward(s.B)
		pts = append(pts, p)
	}
	return pts
}

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForPts calls f for every point of the grid.
func (g Grid[T]) ForPts(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// DigitGrid parses lines of digits into a grid.
func DigitGrid(lines []string) Grid[int] {
	out := make(Grid[int], 0, len(lines))
	for _, line := range lines {
		out = append(out, Digits(line))
	}
	return out
}

// FloodFill replaces the connected region of empty cells at start with
// fill and returns the region size. Cells connect orthogonally.
func FloodFill[T comparable](g Grid[T], start Pt, empty, fill T) int {
	if v, ok := g.AtOk(start); !ok || v != empty {
		return 0
	}
	g.Set(start, fill)
	n := 1
	q := NewQueue[Pt](start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(p Pt) (keepGoing bool) {
			if v, ok := g.AtOk(p); ok && v == empty {
				g.Set(p, fill)
				n++
				q.Push(p)
			}
			return true
		})
		return true
	})
	return n
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

// Hash returns a digest of the grid's contents, for cheap comparison of
// grid states.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}
