package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/media-browser/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
		wantErr bool
	}{
		{name: "default info", cfg: config.LoggingConfig{Level: "info"}, want: zapcore.InfoLevel},
		{name: "empty means info", cfg: config.LoggingConfig{}, want: zapcore.InfoLevel},
		{name: "warn", cfg: config.LoggingConfig{Level: "warn"}, want: zapcore.WarnLevel},
		{name: "verbose wins", cfg: config.LoggingConfig{Level: "error"}, verbose: true, want: zapcore.DebugLevel},
		{name: "development", cfg: config.LoggingConfig{Level: "debug", Development: true}, want: zapcore.DebugLevel},
		{name: "bad level", cfg: config.LoggingConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browser.log")

	logger, err := New(config.LoggingConfig{Level: "info"}, false, path)
	require.NoError(t, err)
	logger.Info("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
