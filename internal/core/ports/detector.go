// Package ports defines the core interfaces for the application.
package ports

// BinaryDetector decides whether a file is a dynamically loadable object.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type BinaryDetector interface {
	// IsLoadable reports whether path is a shared object or position independent
	// executable. A short file or a foreign format is not an error.
	// It returns an error only if the file cannot be opened or read.
	IsLoadable(path string) (bool, error)
}
