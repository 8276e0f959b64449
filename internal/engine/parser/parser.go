// Package parser turns a verbose dependency report into a dependency graph.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single report line.
const maxLineSize = 1 << 20

// Options controls how unresolved libraries are represented.
type Options struct {
	// NotFoundSink links every unresolved library to one shared sink node.
	NotFoundSink bool
	// NotFoundPath is the path of the sink node.
	NotFoundPath string
}

// OptionsFromConfig extracts the parser options from the tool configuration.
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		NotFoundSink: cfg.NotFoundSink,
		NotFoundPath: cfg.NotFoundPath,
	}
}

// Parser builds graphs from dependency reports.
type Parser struct {
	logger ports.Logger
	opts   Options
}

// New creates a Parser that reports diagnostics to logger.
func New(logger ports.Logger, opts Options) *Parser {
	if opts.NotFoundPath == "" {
		opts.NotFoundPath = domain.DefaultNotFoundPath
	}
	return &Parser{
		logger: logger,
		opts:   opts,
	}
}

type mode int

const (
	modeHeader mode = iota
	modeVersionInfo
)

// state is the per-report state of the parser.
type state struct {
	*Parser
	g       *domain.Graph
	mode    mode
	current domain.NodeID
	pending bool
}

// Parse reads the report from r. The root node is created for path; when
// pending is set the first per-object heading of the version information
// replaces it. The returned graph has not been reconciled.
func (p *Parser) Parse(r io.Reader, path string, pending bool) (*domain.Graph, error) {
	s := &state{
		Parser:  p,
		g:       domain.NewGraph(path),
		mode:    modeHeader,
		current: domain.RootID,
		pending: pending,
	}
	s.logger.Debug(fmt.Sprintf("node: path %s", s.g.Root().Path))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := s.feed(sc.Text()); err != nil {
			return nil, zerr.With(err, "line", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReadFailed.Error()), "path", path)
	}

	return s.g, nil
}

// feed dispatches one report line. Patterns are tried in order; the first match wins.
func (s *state) feed(line string) error {
	f := Fields(line)

	switch {
	case len(f) == 0:
		return nil
	case isNotDynamic(f):
		return zerr.With(domain.ErrNotDynamicObject, "path", s.g.Root().Path)
	case isUnresolvedVersion(f):
		s.warn("some symbol versions are unresolvable", line)
		return nil
	case isVersionMarker(f):
		if s.mode == modeHeader {
			s.logger.Debug("version information follows")
		}
		s.mode = modeVersionInfo
		return nil
	}

	if s.mode == modeHeader {
		s.header(f, line)
		return nil
	}
	return s.versionInfo(f, line)
}

// header handles a direct dependency line. Every line registers a new node,
// even when the same library was listed before.
func (s *state) header(f []string, line string) {
	var name string
	notFound := false

	switch {
	case len(f) == 2 && f[0] == "statically" && f[1] == "linked":
		s.warn("statically linked, no dynamic dependencies", line)
		return
	case len(f) == 2 && isParenthesized(f[1]):
		// <lib> (<loadaddr>)
		name = f[0]
	case len(f) == 3 && f[1] == "=>":
		// <lib> => <path>
		name = f[2]
	case len(f) == 4 && f[1] == "=>" && f[2] == "not" && f[3] == "found":
		// <lib> => not found
		name = f[0]
		notFound = true
	case len(f) == 4 && f[1] == "=>" && isParenthesized(f[3]):
		// <lib> => <path> (<loadaddr>)
		name = f[2]
	default:
		s.warn("unrecognized line", line)
		return
	}

	if notFound {
		s.warn(f[0]+": library not found", line)
	}

	id := s.g.AddNode(name)
	s.logger.Debug(fmt.Sprintf("node: path %s", s.g.Node(id).Path))
	s.addEdge(domain.RootID, id)

	if notFound && s.opts.NotFoundSink {
		s.addEdge(id, s.g.Sink(s.opts.NotFoundPath))
	}
}

// versionInfo handles a line after the "Version information:" marker.
func (s *state) versionInfo(f []string, line string) error {
	switch {
	case len(f) == 1 && len(f[0]) > 1 && strings.HasSuffix(f[0], ":"):
		// <path>:
		path := domain.NormalizePath(strings.TrimSuffix(f[0], ":"))
		if s.pending {
			if err := s.g.FinalizeRootPath(path); err != nil {
				return err
			}
			s.pending = false
			s.logger.Debug(fmt.Sprintf("reset path to %s", path))
		}

		id, err := s.g.Lookup(path)
		if err != nil {
			return err
		}
		s.current = id
		return nil

	case len(f) == 4 && f[2] == "=>":
		// <lib> (<version>) => <path>
		version := trimParens(f[1])
		to, err := s.g.Lookup(f[3])
		if err != nil {
			return err
		}
		if s.g.AddLabel(s.current, to, version) {
			s.logger.Debug(fmt.Sprintf("edge: from %s to %s label %s",
				s.g.Node(s.current).Path, s.g.Node(to).Path, version))
		}
		return nil
	}

	s.warn("unrecognized line", line)
	return nil
}

func (s *state) addEdge(from, to domain.NodeID) {
	s.g.AddEdge(from, to)
	s.logger.Debug(fmt.Sprintf("edge: from %s to %s", s.g.Node(from).Path, s.g.Node(to).Path))
}

func (s *state) warn(msg, line string) {
	s.logger.Warn(fmt.Sprintf("%s, input: %s", msg, strings.TrimSpace(line)))
}

// not a dynamic executable
func isNotDynamic(f []string) bool {
	return len(f) == 4 && f[0] == "not" && f[1] == "a"
}

// <path>: <libpath>: version `<symbol>' not found (required by <path>)
func isUnresolvedVersion(f []string) bool {
	return len(f) >= 5 && f[2] == "version" && strings.HasPrefix(f[4], "not")
}

func isVersionMarker(f []string) bool {
	return len(f) == 2 && f[0] == "Version" && f[1] == "information:"
}

func isParenthesized(s string) bool {
	return len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')'
}

func trimParens(s string) string {
	if isParenthesized(s) {
		return s[1 : len(s)-1]
	}
	return s
}
