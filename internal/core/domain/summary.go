package domain

// Summary is what the informational node of an emitted graph reports.
type Summary struct {
	Path     string
	Nodes    int
	Edges    int
	Checksum string
}

// Summarize describes g after reconciliation. The path is the root node's
// path, which already reflects any correction taken from the report.
func Summarize(g *Graph, checksum string) Summary {
	return Summary{
		Path:     g.Root().Path,
		Nodes:    g.NodeCount(),
		Edges:    g.EdgeCount(),
		Checksum: checksum,
	}
}
