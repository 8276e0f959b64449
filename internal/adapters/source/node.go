package source

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/adapters/objfile"
	"go.trai.ch/lddgraph/internal/adapters/shell"
	"go.trai.ch/lddgraph/internal/core/ports"
)

// NodeID is the unique identifier for the source resolver Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{objfile.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			detector, err := graft.Dep[ports.BinaryDetector](ctx)
			if err != nil {
				return nil, err
			}
			lister, err := graft.Dep[ports.DependencyLister](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(detector, lister, os.Stdin), nil
		},
	})
}
