package ports

import (
	"io"

	"go.trai.ch/lddgraph/internal/core/domain"
)

// GraphWriter serializes a reconciled graph into a graph description.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_writer.go -destination=mocks/mock_graph_writer.go -package=mocks
type GraphWriter interface {
	Write(w io.Writer, g *domain.Graph, s domain.Summary) error
}
