// Package domain contains the core domain models for the shared object dependency graph.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// NodeID addresses a node inside the arena owned by a Graph.
type NodeID int

// RootID is the identifier of the node created for the input itself.
const RootID NodeID = 0

// Node represents one loadable object: the root input, a direct dependency,
// or the synthetic sink for unresolved libraries.
type Node struct {
	Path string
}

// Edge is a directed requirement between two nodes.
// An edge without labels is a plain loader dependency.
type Edge struct {
	From   NodeID
	To     NodeID
	Labels []string
}

// Labeled reports whether the edge carries at least one symbol version.
func (e *Edge) Labeled() bool {
	return len(e.Labels) > 0
}

type edgeKey struct {
	from NodeID
	to   NodeID
}

// Graph holds the nodes and edges built from a single dependency report.
type Graph struct {
	nodes     []Node
	edges     []Edge
	byPath    map[string]NodeID
	labeled   map[edgeKey]int
	finalized bool
	sink      NodeID
	hasSink   bool
}

// NewGraph creates a graph whose root node carries the given provisional path.
func NewGraph(rootPath string) *Graph {
	g := &Graph{
		byPath:  make(map[string]NodeID),
		labeled: make(map[edgeKey]int),
	}
	g.AddNode(rootPath)
	return g
}

// NormalizePath strips a single leading "./" so that "./libc.so" and "libc.so"
// name the same object.
func NormalizePath(p string) string {
	if strings.HasPrefix(p, "./") {
		return p[2:]
	}
	return p
}

// AddNode registers a new node and returns its id.
// The path index keeps pointing at the first node registered for a path.
func (g *Graph) AddNode(path string) NodeID {
	path = NormalizePath(path)
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Path: path})
	if _, exists := g.byPath[path]; !exists {
		g.byPath[path] = id
	}
	return id
}

// Lookup returns the first node registered under the normalized path.
func (g *Graph) Lookup(path string) (NodeID, error) {
	path = NormalizePath(path)
	id, ok := g.byPath[path]
	if !ok {
		return 0, zerr.With(ErrUnknownReference, "path", path)
	}
	return id, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) Node {
	return g.nodes[id]
}

// Root returns the root node.
func (g *Graph) Root() Node {
	return g.nodes[RootID]
}

// FinalizeRootPath replaces the provisional root path with the canonical one.
// It may be called at most once per graph.
func (g *Graph) FinalizeRootPath(path string) error {
	path = NormalizePath(path)
	if g.finalized {
		return zerr.With(zerr.With(ErrPathAlreadyFinal, "path", g.nodes[RootID].Path), "new_path", path)
	}
	old := g.nodes[RootID].Path
	if id, ok := g.byPath[old]; ok && id == RootID {
		delete(g.byPath, old)
	}
	g.nodes[RootID].Path = path
	g.byPath[path] = RootID
	g.finalized = true
	return nil
}

// Finalized reports whether the root path has been finalized.
func (g *Graph) Finalized() bool {
	return g.finalized
}

// Sink returns the shared node for unresolved libraries, creating it on first use.
func (g *Graph) Sink(path string) NodeID {
	if !g.hasSink {
		g.sink = g.AddNode(path)
		g.hasSink = true
	}
	return g.sink
}

// AddEdge appends an unlabeled edge. Unlabeled edges are never merged.
func (g *Graph) AddEdge(from, to NodeID) {
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// AddLabel attaches a symbol version to the labeled edge between from and to,
// creating that edge when it does not exist yet.
// It reports whether a new edge was created.
func (g *Graph) AddLabel(from, to NodeID, label string) bool {
	key := edgeKey{from: from, to: to}
	if i, ok := g.labeled[key]; ok {
		g.edges[i].Labels = append(g.edges[i].Labels, label)
		return false
	}
	g.labeled[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Labels: []string{label}})
	return true
}

// Reconcile drops every unlabeled edge whose destination already has a labeled
// incoming edge. Running it again is a no-op.
func (g *Graph) Reconcile() {
	explained := make(map[NodeID]bool)
	for i := range g.edges {
		if g.edges[i].Labeled() {
			explained[g.edges[i].To] = true
		}
	}

	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool {
		return !e.Labeled() && explained[e.To]
	})

	clear(g.labeled)
	for i := range g.edges {
		if g.edges[i].Labeled() {
			g.labeled[edgeKey{from: g.edges[i].From, to: g.edges[i].To}] = i
		}
	}
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes yields nodes in creation order.
func (g *Graph) Nodes() iter.Seq2[NodeID, Node] {
	return func(yield func(NodeID, Node) bool) {
		for i, n := range g.nodes {
			if !yield(NodeID(i), n) {
				return
			}
		}
	}
}

// Edges yields edges in creation order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}
