package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lddgraph/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantKeys     [][]string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantKeys:     [][]string{nil},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantKeys:     [][]string{nil, nil, nil},
		},
		{
			name: "metadata sorted by key",
			err: func() error {
				e := zerr.New("validation failed")
				e = zerr.With(e, "zebra", "z")
				e = zerr.With(e, "alpha", "a")
				return zerr.With(e, "mike", "m")
			}(),
			wantMessages: []string{"validation failed"},
			wantKeys:     [][]string{{"alpha", "mike", "zebra"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			messages := make([]string, len(entries))
			keys := make([][]string, len(entries))
			for i, e := range entries {
				messages[i] = logger.EntryMessage(e)
				if k := logger.EntryMetadataKeys(e); len(k) > 0 {
					keys[i] = k
				}
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestFormatErrorEntries_RepeatedMetadata(t *testing.T) {
	inner := zerr.With(zerr.New("inner"), "path", "a.out")
	outer := zerr.With(zerr.Wrap(inner, "outer"), "path", "a.out")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(outer))
	assert.Equal(t, "Error: outer (path=a.out)\n\n  Caused by:\n    → inner", got)
}
