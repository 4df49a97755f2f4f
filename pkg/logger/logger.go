package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	service    = "courier-settlement"
	timeLayout = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// New builds a logger writing to stdout. The console format is meant for a
// terminal; json is one object per line for log shippers.
func New(level, format string) (*zap.Logger, error) {
	lvl, ok := logLvlMap[level]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", level)
	}

	encoder := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	switch format {
	case "console":
		encoder.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoder.CallerKey = "caller"
		encoder.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder.EncodeCaller = zapcore.ShortCallerEncoder
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          format,
		EncoderConfig:     encoder,
		DisableCaller:     format == "console",
		DisableStacktrace: true,
		InitialFields:     map[string]any{"service": service},
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

// InitLogger installs the logger built by New as the global zap logger.
func InitLogger(level, format string) error {
	logger, err := New(level, format)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
