package objfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/core/ports"
)

// NodeID is the unique identifier for the binary detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.BinaryDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BinaryDetector, error) {
			return NewDetector(), nil
		},
	})
}
