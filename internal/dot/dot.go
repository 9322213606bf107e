// Package dot reads and writes the line-oriented graph-description
// format:
//
//	graph G {
//	    "0" -- "1" [label="4"];
//	    "1" -- "2" [label="1"];
//	}
//
// Directed graphs use the digraph header and -> edges. The label
// attribute is optional on read; an edge without one gets a fresh
// random weight from the graph's weight source.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samkhatri/graphpath/internal/graph"
)

// Option configures the reader.
type Option func(*readConf)

type readConf struct {
	directed bool
	graphOpt []graph.Option
}

// Directed makes the reader build a directed graph. The default is
// undirected regardless of the document header.
func Directed() Option {
	return func(c *readConf) { c.directed = true }
}

// WithWeightFunc forwards a weight source to the graph under
// construction; label-less edges draw from it.
func WithWeightFunc(fn graph.WeightFunc) Option {
	return func(c *readConf) {
		c.graphOpt = append(c.graphOpt, graph.WithWeightFunc(fn))
	}
}

// Read parses a graph description. Every line containing an edge token
// (-> or --) contributes both endpoint nodes and one edge; all other
// lines (header, footer, blanks) are ignored.
func Read(r io.Reader, opts ...Option) (*graph.Graph, error) {
	conf := readConf{}
	for _, opt := range opts {
		opt(&conf)
	}
	g := graph.New(conf.directed, conf.graphOpt...)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		sep := ""
		switch {
		case strings.Contains(line, "->"):
			sep = "->"
		case strings.Contains(line, "--"):
			sep = "--"
		default:
			continue
		}
		parts := strings.SplitN(line, sep, 2)
		origin := trimIdent(parts[0])
		dest := trimIdent(parts[1])
		if origin == "" || dest == "" {
			return nil, fmt.Errorf("dot: line %d: malformed edge %q", lineNo, line)
		}
		g.AddNode(origin)
		g.AddNode(dest)

		weight, ok, err := parseLabel(line)
		if err != nil {
			return nil, fmt.Errorf("dot: line %d: %w", lineNo, err)
		}
		if ok {
			g.AddEdge(origin, dest, weight)
		} else {
			g.AddRandomEdge(origin, dest)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dot: read: %w", err)
	}
	return g, nil
}

// ReadFile reads a graph description from disk.
func ReadFile(path string, opts ...Option) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dot: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Write emits the header, one edge line per stored edge in insertion
// order, and the footer.
func Write(w io.Writer, g *graph.Graph) error {
	header, sep := "graph", "--"
	if g.Directed() {
		header, sep = "digraph", "->"
	}
	if _, err := fmt.Fprintf(w, "%s G {\n", header); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}
	for _, e := range g.Edges() {
		label := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if _, err := fmt.Fprintf(w, "    %q %s %q [label=%q];\n", e.From, sep, e.To, label); err != nil {
			return fmt.Errorf("dot: write: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}
	return nil
}

// WriteFile writes a graph description to disk, truncating any
// existing file.
func WriteFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: create %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("dot: close %s: %w", path, err)
	}
	return nil
}

// trimIdent strips the edge-line decoration (attribute block,
// terminator, quotes, whitespace) around a node identifier.
func trimIdent(s string) string {
	if i := strings.Index(s, "["); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, " \t;\"")
}

// parseLabel extracts the weight from a label="…" attribute. ok is
// false when the line carries no label.
func parseLabel(line string) (weight float64, ok bool, err error) {
	const marker = `label="`
	i := strings.Index(line, marker)
	if i < 0 {
		return 0, false, nil
	}
	rest := line[i+len(marker):]
	j := strings.Index(rest, `"`)
	if j < 0 {
		return 0, false, fmt.Errorf("unterminated label in %q", line)
	}
	w, err := strconv.ParseFloat(rest[:j], 64)
	if err != nil {
		return 0, false, fmt.Errorf("label %q: %w", rest[:j], err)
	}
	return w, true, nil
}
