// Package shell runs the external dependency lister.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Lister implements ports.DependencyLister by running a command such as "ldd -v".
type Lister struct {
	logger  ports.Logger
	command string
	args    []string
}

// NewLister creates a Lister that runs command with args followed by the input path.
func NewLister(logger ports.Logger, command string, args []string) *Lister {
	return &Lister{
		logger:  logger,
		command: command,
		args:    args,
	}
}

// List starts the lister for path. The lister's standard error is forwarded
// to the logger line by line as warnings.
func (l *Lister) List(ctx context.Context, path string) (io.ReadCloser, error) {
	args := make([]string, 0, len(l.args)+1)
	args = append(args, l.args...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, l.command, args...) //nolint:gosec // configured lister command

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, l.startError(err, path)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, l.startError(err, path)
	}

	if err := cmd.Start(); err != nil {
		return nil, l.startError(err, path)
	}
	l.logger.Debug("started " + strings.Join(cmd.Args, " "))

	stderrLog := &logWriter{logger: l.logger}
	g := new(errgroup.Group)
	g.Go(func() error {
		defer func() { _ = stderrLog.Close() }()
		_, err := io.Copy(stderrLog, stderr)
		return err
	})

	return &listing{
		cmd:     cmd,
		stdout:  stdout,
		stderrs: g,
		command: l.command,
		path:    path,
	}, nil
}

func (l *Lister) startError(err error, path string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrListerStartFailed.Error()), "command", l.command), "path", path)
}

// listing is the report stream of a running lister.
type listing struct {
	cmd     *exec.Cmd
	stdout  io.ReadCloser
	stderrs *errgroup.Group
	command string
	path    string
}

func (p *listing) Read(b []byte) (int, error) {
	return p.stdout.Read(b)
}

// Close releases the report stream, drains standard error and waits for the
// lister. A non-zero exit status is reported as ErrListerFailed, and so is a
// failure to drain standard error after a clean exit.
func (p *listing) Close() error {
	_ = p.stdout.Close()
	pumpErr := p.stderrs.Wait()

	err := p.cmd.Wait()
	if err == nil {
		if pumpErr != nil {
			return zerr.With(zerr.With(zerr.Wrap(pumpErr, domain.ErrListerFailed.Error()),
				"command", p.command), "path", p.path)
		}
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.With(zerr.With(zerr.Wrap(err, domain.ErrListerFailed.Error()),
		"command", p.command), "path", p.path), "exit_code", exitCode)
}

// logWriter forwards whole lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSpace(string(line))
	if msg == "" {
		return
	}
	w.logger.Warn(msg)
}
