// Package app implements the application layer for lddgraph.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
	"go.trai.ch/lddgraph/internal/engine/parser"
	"go.trai.ch/zerr"
)

// App turns input arguments into graph descriptions.
type App struct {
	sources ports.SourceResolver
	parser  *parser.Parser
	writer  ports.GraphWriter
	logger  ports.Logger
}

// New creates a new App instance.
func New(
	sources ports.SourceResolver,
	p *parser.Parser,
	writer ports.GraphWriter,
	log ports.Logger,
) *App {
	return &App{
		sources: sources,
		parser:  p,
		writer:  writer,
		logger:  log,
	}
}

// Run processes inputs one after another and writes one graph per input to
// stdout. It stops at the first input that fails.
func (a *App) Run(ctx context.Context, inputs []string, stdout io.Writer) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.process(ctx, input, stdout); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to process input"), "input", input)
		}
	}
	return nil
}

// process builds and writes the graph for one input. The report is closed
// before anything is written, so an abnormal lister exit suppresses the graph.
func (a *App) process(ctx context.Context, input string, stdout io.Writer) error {
	src, err := a.sources.Open(ctx, input)
	if err != nil {
		return err
	}

	g, err := a.parser.Parse(src.Reader(), src.Path(), src.Pending())
	if err != nil {
		_ = src.Close()
		return err
	}

	if err := src.Close(); err != nil {
		return err
	}

	g.Reconcile()
	summary := domain.Summarize(g, src.Checksum())
	a.logger.Info(fmt.Sprintf("%s: %d nodes, %d edges", summary.Path, summary.Nodes, summary.Edges))

	return a.writer.Write(stdout, g, summary)
}
