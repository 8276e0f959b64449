package dot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/adapters/config"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
)

// NodeID is the unique identifier for the graph writer Graft node.
const NodeID graft.ID = "adapter.graph_writer"

func init() {
	graft.Register(graft.Node[ports.GraphWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.GraphWriter, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(cfg.GraphName), nil
		},
	})
}
