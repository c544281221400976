package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

const (
	defaultMaxSize    = 100 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

// New builds a zap logger from cfg.
// Console output is always enabled; when FileLogName is set, JSON entries are
// also written to a rotating file.
func New(cfg settings.Logger) (*zap.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse log level")
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	}

	if cfg.FileLogName != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(newRotator(cfg)),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func newRotator(cfg settings.Logger) *lumberjack.Logger {
	l := &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	if l.MaxSize == 0 {
		l.MaxSize = defaultMaxSize
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = defaultMaxBackups
	}
	if l.MaxAge == 0 {
		l.MaxAge = defaultMaxAge
	}
	return l
}

// parseLevel maps a textual level to a zap level, defaulting to info.
func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(s)
}
