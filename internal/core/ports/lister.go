package ports

import (
	"context"
	"io"
)

// DependencyLister runs the external dependency lister against a binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type DependencyLister interface {
	// List starts the lister for path and returns its report stream.
	// Closing the stream waits for the lister and reports an abnormal exit.
	List(ctx context.Context, path string) (io.ReadCloser, error)
}
