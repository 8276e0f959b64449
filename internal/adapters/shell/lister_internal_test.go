package shell

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func TestLogWriter_Fragments(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Warn("ldd: warning: you do not have execution permission for `./libx.so'"),
		log.EXPECT().Warn("trailing"),
	)

	w := &logWriter{logger: log}
	_, _ = w.Write([]byte("ldd: warning: you do not have "))
	_, _ = w.Write([]byte("execution permission for `./libx.so'\n\n"))
	_, _ = w.Write([]byte("trailing"))
	_ = w.Close()
}

func TestListing_Close_StderrFailureAfterCleanExit(t *testing.T) {
	errDrain := errors.New("stderr drain failed")

	cmd := exec.Command("sh", "-c", "exit 0")
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	g := new(errgroup.Group)
	g.Go(func() error { return errDrain })

	p := &listing{cmd: cmd, stdout: stdout, stderrs: g, command: "sh", path: "x"}

	err = p.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, errDrain)
	assert.ErrorContains(t, err, domain.ErrListerFailed.Error())
}

func TestListing_Close_CleanExit(t *testing.T) {
	cmd := exec.Command("sh", "-c", "exit 0")
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	g := new(errgroup.Group)
	g.Go(func() error { return nil })

	p := &listing{cmd: cmd, stdout: stdout, stderrs: g, command: "sh", path: "x"}
	assert.NoError(t, p.Close())
}
