package aoc

import "testing"

func smallCaves() *Graph[string] {
	var g Graph[string]
	for _, e := range []Edge{{"start", "A"}, {"start", "b"}, {"A", "c"}, {"A", "b"}, {"b", "d"}, {"A", "end"}, {"b", "end"}} {
		g.AddEdge(e.A, e.B, 1)
	}
	return &g
}

type Edge struct {
	A, B string
}

func TestNumPaths(t *testing.T) {
	g := smallCaves()
	// Every node at most once: start,A,end / start,A,b,end /
	// start,b,end / start,b,A,end.
	if got := g.NumPaths("start", "end"); got != 4 {
		t.Errorf("NumPaths = %v, want 4", got)
	}
}

func TestNumPathsWithRestriction(t *testing.T) {
	g := smallCaves()
	// Uppercase nodes may repeat.
	got := g.NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		if x[0] >= 'A' && x[0] <= 'Z' {
			return true
		}
		return visited[x] == 0
	})
	if got != 10 {
		t.Errorf("NumPathsWithRestriction = %v, want 10", got)
	}
}

func TestReachableNodes(t *testing.T) {
	g := smallCaves()
	g.AddEdge("x", "y", 1)
	reach := g.ReachableNodes("start")
	if !reach["end"] {
		t.Error("end not reachable from start")
	}
	if reach["x"] {
		t.Error("disconnected node reported reachable")
	}
	if len(reach) != 6 {
		t.Errorf("ReachableNodes = %d nodes, want 6", len(reach))
	}
}

func TestRemoveNode(t *testing.T) {
	g := smallCaves()
	g.RemoveNode("b")
	if g.Nodes["b"] {
		t.Error("removed node still present")
	}
	if got := g.NumPaths("start", "end"); got != 1 {
		t.Errorf("NumPaths after removal = %v, want 1", got)
	}
}

func TestClone(t *testing.T) {
	g := smallCaves()
	g2 := g.Clone()
	g2.RemoveNode("A")
	if !g.Nodes["A"] {
		t.Error("removal in clone affected original")
	}
}
