// Package source opens the dependency report for an input argument.
package source

import (
	"context"
	"io"
	"os"

	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.SourceResolver.
type Resolver struct {
	detector ports.BinaryDetector
	lister   ports.DependencyLister
	stdin    io.Reader
}

// NewResolver creates a Resolver reading "-" from stdin.
func NewResolver(detector ports.BinaryDetector, lister ports.DependencyLister, stdin io.Reader) *Resolver {
	return &Resolver{
		detector: detector,
		lister:   lister,
		stdin:    stdin,
	}
}

// Open selects the report stream for arg:
// standard input for "-", the lister's output for a loadable object,
// and the file itself otherwise. Only a listed object has a final path.
func (r *Resolver) Open(ctx context.Context, arg string) (*domain.Source, error) {
	if arg == domain.StdinPath {
		return domain.NewSource(arg, r.stdin, nil, true), nil
	}

	loadable, err := r.detector.IsLoadable(arg)
	if err != nil {
		return nil, err
	}

	if loadable {
		rc, err := r.lister.List(ctx, arg)
		if err != nil {
			return nil, err
		}
		return domain.NewSource(arg, rc, rc, false), nil
	}

	// #nosec G304 -- arg is an input argument
	f, err := os.Open(arg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInputUnreadable.Error()), "path", arg)
	}
	return domain.NewSource(arg, f, f, true), nil
}
