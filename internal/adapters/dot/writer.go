// Package dot writes dependency graphs in the Graphviz DOT language.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.GraphWriter.
type Writer struct {
	name string
}

// NewWriter creates a Writer that emits a digraph with the given name.
func NewWriter(name string) *Writer {
	if name == "" {
		name = domain.DefaultGraphName
	}
	return &Writer{name: name}
}

// Write emits the summary node, every node in creation order, every edge in
// creation order, and an invisible edge that keeps the summary near the graph.
// Labeled edges are solid with one symbol version per line; unlabeled edges are dotted.
func (d *Writer) Write(w io.Writer, g *domain.Graph, s domain.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "digraph %s {\n", quote(d.name))
	fmt.Fprintf(bw, "\t%s [shape=note, label=\"%s\\nnodes: %d\\nedges: %d\\nreport: %s\"];\n",
		quote(domain.SummaryNodeID), escape(s.Path), s.Nodes, s.Edges, s.Checksum)

	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "\t%s;\n", quote(n.Path))
	}

	first := -1
	for e := range g.Edges() {
		if first < 0 {
			first = int(e.To)
		}
		from := quote(g.Node(e.From).Path)
		to := quote(g.Node(e.To).Path)
		if e.Labeled() {
			fmt.Fprintf(bw, "\t%s -> %s [label=\"%s\"];\n", from, to, joinLabels(e.Labels))
		} else {
			fmt.Fprintf(bw, "\t%s -> %s [style=dotted];\n", from, to)
		}
	}

	if first >= 0 {
		fmt.Fprintf(bw, "\t%s -> %s [style=invis];\n",
			quote(g.Node(domain.NodeID(first)).Path), quote(domain.SummaryNodeID))
	}

	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGraphWriteFailed.Error()), "path", s.Path)
	}
	return nil
}

// joinLabels joins symbol versions with the DOT line break escape.
func joinLabels(labels []string) string {
	escaped := make([]string, len(labels))
	for i, l := range labels {
		escaped[i] = escape(l)
	}
	return strings.Join(escaped, `\n`)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string {
	return escaper.Replace(s)
}

func quote(s string) string {
	return `"` + escape(s) + `"`
}
