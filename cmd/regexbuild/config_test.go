package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, config{LogLevel: "info", LogFormat: "text", LogPrefix: "RegexBuilder"}, cfg)
	assert.Nil(t, cfg.builderOptions(slog.Default()))
}

func TestConfigLevel(t *testing.T) {
	tests := []struct {
		cfg  config
		want slog.Level
	}{
		{config{LogLevel: "debug"}, slog.LevelDebug},
		{config{LogLevel: "WARN"}, slog.LevelWarn},
		{config{LogLevel: "error"}, slog.LevelError},
		{config{LogLevel: "error", Trace: true}, slog.LevelDebug},
	}

	for _, tt := range tests {
		got, err := tt.cfg.level()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestConfigTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config{LogLevel: "info", LogFormat: "text", LogPrefix: "RB", Trace: true}

	l, err := cfg.logger(&buf)
	require.NoError(t, err)

	opts := cfg.builderOptions(l)
	require.Len(t, opts, 2)
	assert.True(t, l.Enabled(t.Context(), slog.LevelDebug))
}
