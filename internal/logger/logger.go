package logger

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Conf struct {
	Env   string
	Level string
}

type Logger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

func New(conf Conf) (*Logger, error) {
	var cfg zap.Config

	if conf.Env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zap.ParseAtomicLevel(levelOrDefault(conf.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", conf.Level, err)
	}

	cfg.Level = level

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{z: z, level: level}, nil
}

// NewFromZap wraps an already built zap logger. Used by tests with an observer core.
func NewFromZap(z *zap.Logger) *Logger {
	return &Logger{z: z, level: zap.NewAtomicLevelAt(zap.DebugLevel)}
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}

	return level
}

func (l *Logger) SetLevel(level string) error {
	lvl, err := zapcore.ParseLevel(levelOrDefault(level))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	l.level.SetLevel(lvl)

	return nil
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{z: l.z.With(fields...), level: l.level}
}

// Std returns a standard library logger writing at error level, for http.Server.ErrorLog.
func (l *Logger) Std() *log.Logger {
	std, err := zap.NewStdLogAt(l.z, zap.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(l.z)
	}

	return std
}

func (l *Logger) Sync() error {
	return l.z.Sync() //nolint:wrapcheck
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.z.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) LogWarnf(format string, v ...any) {
	l.z.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.z.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) LogDebugf(format string, v ...any) {
	l.z.Debug(fmt.Sprintf(format, v...))
}
