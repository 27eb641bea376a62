// Package logging builds the *zap.Logger the rest of the module accepts
// as an optional collaborator, from config.LoggingSettings. It is an
// external concern to the segmentation core in the same sense the Python
// implementation's logging.logger module is: the core never calls this
// package itself, a host wires it in.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wonglyxng/segmentation/config"
)

// New builds a *zap.Logger whose encoding matches settings.Format
// ("console", "json", or "simple") and whose minimum level matches
// settings.Level, writing to stdout.
func New(settings config.LoggingSettings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(settings.Level))
	if err != nil {
		return nil, fmt.Errorf("logging: unrecognized level %q: %w", settings.Level, err)
	}

	encoder, err := newEncoder(settings.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	return zap.New(core), nil
}

// newEncoder maps a format name to a zapcore.Encoder, the Go analogue of
// the Python implementation's logging.format.get_formatter table.
func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "json":
		cfg := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "message",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
		return zapcore.NewJSONEncoder(cfg), nil
	case "simple":
		cfg := zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			ConsoleSeparator: ": ",
		}
		return zapcore.NewConsoleEncoder(cfg), nil
	case "console", "":
		cfg := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			ConsoleSeparator: " - ",
		}
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("logging: unrecognized format %q", format)
	}
}
