package graph_test

import (
	"math"
	"testing"

	"github.com/samkhatri/graphpath/internal/graph"
)

func TestAddNode_Idempotent(t *testing.T) {
	g := graph.New(false)
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b", 3)

	g.AddNode("a") // duplicate

	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount = %d, want 2", got)
	}
	if nbrs := g.Neighbors("a"); len(nbrs) != 1 || nbrs[0] != "b" {
		t.Errorf("Neighbors(a) = %v, want [b]", nbrs)
	}
}

func TestAddEdge_DuplicateIsNoOp(t *testing.T) {
	g := graph.New(false)
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b", 3)

	g.AddEdge("a", "b", 9) // same orientation
	g.AddEdge("b", "a", 9) // reverse orientation, same undirected edge

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
	// Weight is immutable once set.
	if w := g.EdgeWeight("a", "b"); w != 3 {
		t.Errorf("EdgeWeight(a,b) = %v, want 3", w)
	}
	if nbrs := g.Neighbors("a"); len(nbrs) != 1 {
		t.Errorf("Neighbors(a) = %v, want exactly one entry", nbrs)
	}
}

func TestAddEdge_DirectedAllowsBothOrientations(t *testing.T) {
	g := graph.New(true)
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "a", 2)

	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d, want 2", got)
	}
	if w := g.EdgeWeight("a", "b"); w != 1 {
		t.Errorf("EdgeWeight(a,b) = %v, want 1", w)
	}
	if w := g.EdgeWeight("b", "a"); w != 2 {
		t.Errorf("EdgeWeight(b,a) = %v, want 2", w)
	}
}

func TestAddEdge_MissingEndpointIsNoOp(t *testing.T) {
	g := graph.New(false)
	g.AddNode("a")

	g.AddEdge("a", "ghost", 1)
	g.AddEdge("ghost", "a", 1)

	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d, want 0", got)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount = %d, want 1 (no implicit node creation)", got)
	}
	if nbrs := g.Neighbors("a"); len(nbrs) != 0 {
		t.Errorf("Neighbors(a) = %v, want empty", nbrs)
	}
}

func TestUndirectedSymmetry(t *testing.T) {
	g := graph.New(false)
	g.AddNode("u")
	g.AddNode("v")
	g.AddEdge("u", "v", 7)

	if !g.EdgeExists("u", "v") || !g.EdgeExists("v", "u") {
		t.Error("EdgeExists must hold in both orientations for undirected graphs")
	}
	if g.EdgeWeight("u", "v") != 7 || g.EdgeWeight("v", "u") != 7 {
		t.Errorf("EdgeWeight asymmetric: u→v=%v v→u=%v", g.EdgeWeight("u", "v"), g.EdgeWeight("v", "u"))
	}
	if nbrs := g.Neighbors("v"); len(nbrs) != 1 || nbrs[0] != "u" {
		t.Errorf("Neighbors(v) = %v, want [u]", nbrs)
	}
}

func TestDirectedNeighborsOneWay(t *testing.T) {
	g := graph.New(true)
	g.AddNode("u")
	g.AddNode("v")
	g.AddEdge("u", "v", 7)

	if g.EdgeExists("v", "u") {
		t.Error("EdgeExists(v,u) must be false on a directed graph")
	}
	if nbrs := g.Neighbors("v"); len(nbrs) != 0 {
		t.Errorf("Neighbors(v) = %v, want empty", nbrs)
	}
	if !math.IsInf(g.EdgeWeight("v", "u"), 1) {
		t.Errorf("EdgeWeight(v,u) = %v, want +Inf", g.EdgeWeight("v", "u"))
	}
}

func TestEdgeWeight_MissingEdgeIsInfinite(t *testing.T) {
	g := graph.New(false)
	g.AddNode("a")
	g.AddNode("b")

	if w := g.EdgeWeight("a", "b"); !math.IsInf(w, 1) {
		t.Errorf("EdgeWeight on missing edge = %v, want +Inf", w)
	}
}

func TestAddRandomEdge_WeightInRange(t *testing.T) {
	g := graph.New(false, graph.WithWeightFunc(graph.SeededWeightFunc(42)))
	for i := 0; i < 50; i++ {
		u := string(rune('a' + i))
		v := string(rune('a'+i)) + "x"
		g.AddNode(u)
		g.AddNode(v)
		g.AddRandomEdge(u, v)
		w := g.EdgeWeight(u, v)
		if w < graph.MinRandomWeight || w > graph.MaxRandomWeight {
			t.Fatalf("random weight %v out of [%d,%d]", w, graph.MinRandomWeight, graph.MaxRandomWeight)
		}
		if w != math.Trunc(w) {
			t.Fatalf("random weight %v is not integral", w)
		}
	}
}

func TestNeighborOrderIsInsertionOrder(t *testing.T) {
	g := graph.New(true)
	for _, id := range []string{"s", "c", "a", "b"} {
		g.AddNode(id)
	}
	g.AddEdge("s", "c", 1)
	g.AddEdge("s", "a", 1)
	g.AddEdge("s", "b", 1)

	want := []string{"c", "a", "b"}
	got := g.Neighbors("s")
	if len(got) != len(want) {
		t.Fatalf("Neighbors(s) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(s) = %v, want %v", got, want)
		}
	}
}
