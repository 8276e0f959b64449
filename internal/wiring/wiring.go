// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lddgraph/internal/adapters/config"
	_ "go.trai.ch/lddgraph/internal/adapters/dot"
	_ "go.trai.ch/lddgraph/internal/adapters/logger"
	_ "go.trai.ch/lddgraph/internal/adapters/objfile"
	_ "go.trai.ch/lddgraph/internal/adapters/shell"
	_ "go.trai.ch/lddgraph/internal/adapters/source"
	// Register app and engine nodes.
	_ "go.trai.ch/lddgraph/internal/app"
	_ "go.trai.ch/lddgraph/internal/engine/parser"
)
