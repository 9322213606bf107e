package dot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samkhatri/graphpath/internal/dot"
	"github.com/samkhatri/graphpath/internal/graph"
)

func TestWrite_UndirectedFormat(t *testing.T) {
	g := graph.New(false)
	g.AddNode("0")
	g.AddNode("1")
	g.AddEdge("0", "1", 4)

	var buf bytes.Buffer
	if err := dot.Write(&buf, g); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	want := "graph G {\n    \"0\" -- \"1\" [label=\"4\"];\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("Write output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWrite_DirectedFormat(t *testing.T) {
	g := graph.New(true)
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b", 2.5)

	var buf bytes.Buffer
	if err := dot.Write(&buf, g); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph G {\n") {
		t.Errorf("missing digraph header: %q", out)
	}
	if !strings.Contains(out, `"a" -> "b" [label="2.5"];`) {
		t.Errorf("missing directed edge line: %q", out)
	}
}

func TestRoundTrip_PreservesNodesAndWeights(t *testing.T) {
	g := graph.New(false)
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddNode(id)
	}
	g.AddEdge("a", "b", 4)
	g.AddEdge("b", "c", 1)
	g.AddEdge("a", "c", 2.5)
	g.AddEdge("c", "d", 5)

	var buf bytes.Buffer
	if err := dot.Write(&buf, g); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	back, err := dot.Read(&buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	if back.NodeCount() != g.NodeCount() {
		t.Errorf("NodeCount = %d, want %d", back.NodeCount(), g.NodeCount())
	}
	if back.EdgeCount() != g.EdgeCount() {
		t.Errorf("EdgeCount = %d, want %d", back.EdgeCount(), g.EdgeCount())
	}
	for _, e := range g.Edges() {
		if w := back.EdgeWeight(e.From, e.To); w != e.Weight {
			t.Errorf("EdgeWeight(%s,%s) = %v, want %v", e.From, e.To, w, e.Weight)
		}
	}
}

func TestRead_DefaultsToUndirected(t *testing.T) {
	// Even a digraph document comes back undirected unless the caller
	// asks otherwise.
	in := "digraph G {\n    \"a\" -> \"b\" [label=\"3\"];\n}\n"
	g, err := dot.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if g.Directed() {
		t.Error("Directed() = true, want false by default")
	}
	if !g.EdgeExists("b", "a") {
		t.Error("EdgeExists(b,a) = false, want true on undirected read")
	}
}

func TestRead_DirectedOption(t *testing.T) {
	in := "digraph G {\n    \"a\" -> \"b\" [label=\"3\"];\n}\n"
	g, err := dot.Read(strings.NewReader(in), dot.Directed())
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !g.Directed() {
		t.Error("Directed() = false, want true")
	}
	if g.EdgeExists("b", "a") {
		t.Error("EdgeExists(b,a) = true, want false on directed read")
	}
	if w := g.EdgeWeight("a", "b"); w != 3 {
		t.Errorf("EdgeWeight(a,b) = %v, want 3", w)
	}
}

func TestRead_LabellessEdgeGetsRandomWeight(t *testing.T) {
	in := "graph G {\n    \"a\" -- \"b\";\n}\n"
	g, err := dot.Read(strings.NewReader(in), dot.WithWeightFunc(graph.SeededWeightFunc(7)))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	w := g.EdgeWeight("a", "b")
	if w < graph.MinRandomWeight || w > graph.MaxRandomWeight {
		t.Errorf("weight %v out of [%d,%d]", w, graph.MinRandomWeight, graph.MaxRandomWeight)
	}
}

func TestRead_BadLabelIsAnError(t *testing.T) {
	in := "graph G {\n    \"a\" -- \"b\" [label=\"lots\"];\n}\n"
	if _, err := dot.Read(strings.NewReader(in)); err == nil {
		t.Error("expected an error for a non-numeric label")
	}
}

func TestRead_IgnoresNonEdgeLines(t *testing.T) {
	in := "graph G {\n\n    // comment\n    \"a\" -- \"b\" [label=\"1\"];\n}\n"
	g, err := dot.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("got %d nodes / %d edges, want 2 / 1", g.NodeCount(), g.EdgeCount())
	}
}
