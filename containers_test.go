package aoc

import "testing"

func TestStack(t *testing.T) {
	var s Stack[rune]
	for _, r := range "([{" {
		s.Push(r)
	}
	if v, ok := s.Peek(); !ok || v != '{' {
		t.Errorf("Peek = %c, %v; want {, true", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != '{' {
		t.Errorf("Pop = %c, %v; want {, true", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != '[' {
		t.Errorf("Pop = %c, %v; want [, true", v, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %v, want 1", s.Len())
	}
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack reported ok")
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("drained queue = %v, want [1 2 3]", got)
	}
}

func TestMinQueue(t *testing.T) {
	pq := MinQueue[string]()
	pq.Push(&PQI[string]{V: "c", P: 3})
	pq.Push(&PQI[string]{V: "a", P: 1})
	b := &PQI[string]{V: "b", P: 2}
	pq.Push(b)

	if got := pq.Pop(); got.V != "a" {
		t.Errorf("Pop = %v, want a", got.V)
	}
	b.P = 5
	pq.Update(b)
	if got := pq.Pop(); got.V != "c" {
		t.Errorf("Pop after update = %v, want c", got.V)
	}
	if got := pq.Pop(); got.V != "b" {
		t.Errorf("Pop = %v, want b", got.V)
	}
}

func TestMaxQueue(t *testing.T) {
	pq := MaxQueue[int]()
	for _, p := range []int{3, 1, 4, 1, 5} {
		pq.Push(&PQI[int]{V: p, P: p})
	}
	if got := pq.Pop(); got.P != 5 {
		t.Errorf("Pop = %v, want 5", got.P)
	}
	if got := pq.Peek(); got.P != 4 {
		t.Errorf("Peek = %v, want 4", got.P)
	}
}
