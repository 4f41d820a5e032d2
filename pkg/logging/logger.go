package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with the intake defaults.
type Logger struct {
	*zap.Logger
}

// Option tweaks logger construction.
type Option func(*settings)

type settings struct {
	sink    zapcore.WriteSyncer
	console bool
}

// WithSink redirects log output, stderr by default.
func WithSink(w zapcore.WriteSyncer) Option {
	return func(s *settings) {
		if w != nil {
			s.sink = w
		}
	}
}

// WithConsoleEncoding switches from JSON lines to the human readable encoder.
func WithConsoleEncoding() Option {
	return func(s *settings) {
		s.console = true
	}
}

// New creates a new logger with the specified level. Unknown levels fall
// back to info.
func New(level string, opts ...Option) *Logger {
	cfg := settings{sink: zapcore.Lock(os.Stderr)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.console {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, cfg.sink, ParseLevel(level))
	return &Logger{Logger: zap.New(core)}
}

// FromZap adopts an existing zap logger, used by tests with observer cores.
func FromZap(l *zap.Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{Logger: l}
}

// Default returns a logger with default settings.
func Default() *Logger {
	return New("info")
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// ParseLevel maps a config string onto a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
