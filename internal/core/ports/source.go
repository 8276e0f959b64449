package ports

import (
	"context"

	"go.trai.ch/lddgraph/internal/core/domain"
)

// SourceResolver opens the dependency report for one input argument.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceResolver interface {
	// Open selects standard input, the dependency lister or a plain text file
	// for arg. The caller owns the returned source and must close it.
	Open(ctx context.Context, arg string) (*domain.Source, error)
}
