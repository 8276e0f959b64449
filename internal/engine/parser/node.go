package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lddgraph/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
)

// NodeID is the unique identifier for the parser Graft node.
const NodeID graft.ID = "engine.parser"

func init() {
	graft.Register(graft.Node[*Parser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Parser, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, OptionsFromConfig(cfg)), nil
		},
	})
}
