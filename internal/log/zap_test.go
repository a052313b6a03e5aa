package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "bogus", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			zl, err := NewLogger(WithLogLevel(tt.level), WithOutputPaths(filepath.Join(t.TempDir(), "log.json")))
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, zl)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, zl)
		})
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	zl, err := NewLogger(WithLogLevel("info"), WithOutputPaths(path))
	require.NoError(t, err)

	zl.Info("hello", zap.Int("value", 3))
	zl.Debug("dropped")
	_ = zl.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"value":3`)
	assert.False(t, strings.Contains(out, "dropped"))
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Must(NewLogger(WithLogLevel("loud"))) })
	assert.NotPanics(t, func() { Must(zap.NewNop(), nil) })
}
