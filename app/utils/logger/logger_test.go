package logger

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug level", level: "debug", wantErr: false},
		{name: "info level", level: "info", wantErr: false},
		{name: "warn level", level: "warn", wantErr: false},
		{name: "warning alias", level: "warning", wantErr: false},
		{name: "error level", level: "error", wantErr: false},
		{name: "uppercase level", level: "INFO", wantErr: false},
		{name: "unknown level", level: "verbose", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("hello")

	output := buf.String()
	assert.Contains(t, output, "hello")
	assert.Contains(t, output, "backoffice-api")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info("should be filtered")
	logger.Warn("should appear")

	output := buf.String()
	assert.NotContains(t, output, "should be filtered")
	assert.Contains(t, output, "should appear")
}

func TestContextualLoggers(t *testing.T) {
	t.Run("WithComponent", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter("info", &buf)
		require.NoError(t, err)

		WithComponent(base, "gate").Info("checking session")
		assert.Contains(t, buf.String(), "gate")
	})

	t.Run("WithUser", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter("info", &buf)
		require.NoError(t, err)

		WithUser(base, "user-123").Info("profile loaded")
		assert.Contains(t, buf.String(), "user-123")
	})

	t.Run("WithClient", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter("info", &buf)
		require.NoError(t, err)

		WithClient(base, "client-456").Info("context resolved")
		assert.Contains(t, buf.String(), "client-456")
	})

	t.Run("WithRequest", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter("info", &buf)
		require.NoError(t, err)

		WithRequest(base, "req-1", "GET", "/v1/blogs").Info("request started")
		output := buf.String()
		assert.Contains(t, output, "req-1")
		assert.Contains(t, output, "GET")
		assert.Contains(t, output, "/v1/blogs")
	})

	t.Run("DatabaseLogger", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter("info", &buf)
		require.NoError(t, err)

		DatabaseLogger(base).Info("query executed")
		assert.Contains(t, buf.String(), "database")
	})

	t.Run("IdentityLogger", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter("info", &buf)
		require.NoError(t, err)

		IdentityLogger(base).Info("whoami call")
		assert.Contains(t, buf.String(), "identity")
	})
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogError(base, assert.AnError, "operation failed", "user_id", "u-1")

	output := buf.String()
	assert.Contains(t, output, "operation failed")
	assert.Contains(t, output, "u-1")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	start := time.Now().Add(-15 * time.Millisecond)
	LogDuration(base, start, "grant_lookup", "client_id", "c-1")

	output := buf.String()
	assert.Contains(t, output, "grant_lookup")
	assert.Contains(t, output, "duration_ms")
	assert.Contains(t, output, "c-1")
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLogLevel("nope")
	assert.Error(t, err)
}
