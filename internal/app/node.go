package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/adapters/dot"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lddgraph/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/lddgraph/internal/adapters/source" //nolint:depguard // Wired in app layer
	"go.trai.ch/lddgraph/internal/core/ports"
	"go.trai.ch/lddgraph/internal/engine/parser"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			source.NodeID,
			parser.NodeID,
			dot.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			sources, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[*parser.Parser](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.GraphWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(sources, p, writer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
