package app

import "go.trai.ch/lddgraph/internal/core/ports"

// Components holds what the command line needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
}
