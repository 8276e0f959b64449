package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// LoaderNodeID is the unique identifier for the configuration loader Graft node.
	LoaderNodeID graft.ID = "adapter.config_loader"

	// NodeID is the unique identifier for the configuration Graft node.
	NodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Config{}, err
			}
			return LoadWorkingDir(loader)
		},
	})
}

// LoadWorkingDir loads the configuration for the process working directory.
func LoadWorkingDir(loader ports.ConfigLoader) (domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to get working directory")
	}
	return loader.Load(cwd)
}
