package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"default_is_info", "", false, true},
		{"debug", "debug", true, true},
		{"error", "error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(settings.Logger{LogLevel: tt.level})
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.wantInfo, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	l, err := New(settings.Logger{LogLevel: "loud"})
	assert.Nil(t, l)
	assert.ErrorContains(t, err, "failed to parse log level")
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.log")

	l, err := New(settings.Logger{LogLevel: "info", FileLogName: path})
	require.NoError(t, err)

	l.Info("queue ready", zap.String("queue", "orders"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"queue ready"`)
	assert.Contains(t, string(data), `"queue":"orders"`)
}

func TestNewRotator_Defaults(t *testing.T) {
	r := newRotator(settings.Logger{FileLogName: "x.log"})
	assert.Equal(t, defaultMaxSize, r.MaxSize)
	assert.Equal(t, defaultMaxBackups, r.MaxBackups)
	assert.Equal(t, defaultMaxAge, r.MaxAge)

	r = newRotator(settings.Logger{FileLogName: "x.log", MaxSize: 5, MaxBackups: 1, MaxAge: 2, Compress: true})
	assert.Equal(t, 5, r.MaxSize)
	assert.Equal(t, 1, r.MaxBackups)
	assert.Equal(t, 2, r.MaxAge)
	assert.True(t, r.Compress)
}
