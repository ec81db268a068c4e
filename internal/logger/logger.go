// Package logger provides structured logging for dupsweep using zap.
//
// Logs go to stderr by default; stdout belongs to the duplicate report and
// the delete prompt.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/dupsweep/internal/config"
)

// Logger wraps zap.SugaredLogger with context methods.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a new Logger from configuration. It fails only when a log file
// cannot be opened.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	sink, terminal, err := openSink(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(buildEncoder(cfg.Format, terminal), sink, parseLevel(cfg.Level))
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return wrap(base), nil
}

// NewDefault creates a Logger with default settings (warn level, text format, stderr).
func NewDefault() *Logger {
	logger, _ := New(&config.DefaultConfig().Logging)
	return logger
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) *Logger {
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// buildEncoder returns a JSON encoder or a console encoder. Level colors are
// only used when the sink is a terminal stream, never in log files.
func buildEncoder(format string, terminal bool) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if terminal {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// openSink resolves the output setting. Anything other than stderr or stdout
// is a file path opened for appending.
func openSink(output string) (zapcore.WriteSyncer, bool, error) {
	switch output {
	case "stderr", "":
		return zapcore.Lock(os.Stderr), true, nil
	case "stdout":
		return zapcore.Lock(os.Stdout), true, nil
	}

	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open log file %s: %w", output, err)
	}
	return zapcore.AddSync(file), false, nil
}

// WithRun returns a Logger tagged with the sweep run ID.
func (l *Logger) WithRun(runID string) *Logger {
	return &Logger{SugaredLogger: l.With("run", runID), base: l.base}
}

// WithTarget returns a Logger with scan target context.
func (l *Logger) WithTarget(dir string) *Logger {
	return &Logger{SugaredLogger: l.With("target", dir), base: l.base}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
