package domain

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// StdinPath is the argument that selects standard input.
const StdinPath = "-"

// Source is an opened dependency report together with the path it describes.
// Reads are checksummed and tracked so that Close can tell whether the
// report was consumed to the end.
type Source struct {
	path    string
	pending bool
	r       io.Reader
	closer  io.Closer
	digest  *xxhash.Digest
	eof     bool
	closed  bool
}

// NewSource wraps r. A nil closer means the stream is not owned by the source
// (standard input). Pending marks a path that the report itself may correct.
func NewSource(path string, r io.Reader, closer io.Closer, pending bool) *Source {
	return &Source{
		path:    path,
		pending: pending,
		r:       r,
		closer:  closer,
		digest:  xxhash.New(),
	}
}

// Path returns the path argument the source was opened for.
func (s *Source) Path() string {
	return s.path
}

// Pending reports whether the displayed path should be taken from the report.
func (s *Source) Pending() bool {
	return s.pending
}

// Reader returns the report stream.
func (s *Source) Reader() io.Reader {
	return sourceReader{s}
}

// Checksum returns the xxhash64 of every byte read so far, as hex.
func (s *Source) Checksum() string {
	return fmt.Sprintf("%016x", s.digest.Sum64())
}

// Close releases the underlying stream. It reports ErrIncompleteRead when the
// report was not read to the end. Calling Close twice is a no-op.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs error
	if !s.eof {
		errs = zerr.With(ErrIncompleteRead, "path", s.path)
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, ErrCloseFailed.Error()), "path", s.path))
		}
	}
	return errs
}

type sourceReader struct {
	s *Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	n, err := r.s.r.Read(p)
	if n > 0 {
		_, _ = r.s.digest.Write(p[:n])
	}
	if errors.Is(err, io.EOF) {
		r.s.eof = true
	}
	return n, err
}
