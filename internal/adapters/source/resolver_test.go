package source_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lddgraph/internal/adapters/source"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/lddgraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestResolver_Open_Stdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockBinaryDetector(ctrl)
	lister := mocks.NewMockDependencyLister(ctrl)

	r := source.NewResolver(detector, lister, strings.NewReader("report\n"))

	src, err := r.Open(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, "-", src.Path())
	assert.True(t, src.Pending())

	out, err := io.ReadAll(src.Reader())
	require.NoError(t, err)
	assert.Equal(t, "report\n", string(out))
	require.NoError(t, src.Close())
}

func TestResolver_Open_Loadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockBinaryDetector(ctrl)
	lister := mocks.NewMockDependencyLister(ctrl)

	ctx := context.Background()
	detector.EXPECT().IsLoadable("/usr/lib/libz.so.1").Return(true, nil)
	lister.EXPECT().List(ctx, "/usr/lib/libz.so.1").
		Return(io.NopCloser(strings.NewReader("\tlibc.so.6 => /lib/libc.so.6 (0x1)\n")), nil)

	r := source.NewResolver(detector, lister, nil)

	src, err := r.Open(ctx, "/usr/lib/libz.so.1")
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/libz.so.1", src.Path())
	assert.False(t, src.Pending())

	_, err = io.ReadAll(src.Reader())
	require.NoError(t, err)
	require.NoError(t, src.Close())
}

func TestResolver_Open_ListerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockBinaryDetector(ctrl)
	lister := mocks.NewMockDependencyLister(ctrl)

	detector.EXPECT().IsLoadable("lib.so").Return(true, nil)
	lister.EXPECT().List(gomock.Any(), "lib.so").Return(nil, domain.ErrListerStartFailed)

	_, err := source.NewResolver(detector, lister, nil).Open(context.Background(), "lib.so")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrListerStartFailed.Error())
}

func TestResolver_Open_TextFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockBinaryDetector(ctrl)
	lister := mocks.NewMockDependencyLister(ctrl)

	path := filepath.Join(t.TempDir(), "ls.txt")
	require.NoError(t, os.WriteFile(path, []byte("\tstatically linked\n"), 0o600))
	detector.EXPECT().IsLoadable(path).Return(false, nil)

	src, err := source.NewResolver(detector, lister, nil).Open(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, src.Pending())

	out, err := io.ReadAll(src.Reader())
	require.NoError(t, err)
	assert.Equal(t, "\tstatically linked\n", string(out))
	require.NoError(t, src.Close())
}

func TestResolver_Open_DetectorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockBinaryDetector(ctrl)
	lister := mocks.NewMockDependencyLister(ctrl)

	detector.EXPECT().IsLoadable("missing").Return(false, errors.New("open missing: no such file or directory"))

	_, err := source.NewResolver(detector, lister, nil).Open(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no such file or directory")
}

func TestResolver_Open_Unreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockBinaryDetector(ctrl)
	lister := mocks.NewMockDependencyLister(ctrl)

	path := filepath.Join(t.TempDir(), "gone")
	detector.EXPECT().IsLoadable(path).Return(false, nil)

	_, err := source.NewResolver(detector, lister, nil).Open(context.Background(), path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInputUnreadable.Error())
}
