package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/adapters/config"
	"go.trai.ch/lddgraph/internal/adapters/logger"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
)

// NodeID is the unique identifier for the dependency lister Graft node.
const NodeID graft.ID = "adapter.lister"

func init() {
	graft.Register(graft.Node[ports.DependencyLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyLister, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(log, cfg.ListerCommand, cfg.ListerArgs), nil
		},
	})
}
