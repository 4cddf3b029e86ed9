package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is filled from LOG_LEVEL, LOG_ENCODING and LOG_OUTPUT.
type Config struct {
	Level      string // debug, info, warn, error
	Encoding   string // json or console
	OutputPath string // file path, stdout or stderr; stdout when empty
	Service    string // attached to every entry as "service" when set
}

// New builds the process logger. Unknown levels fall back to info and
// unknown encodings to json.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level %q, using info\n", cfg.Level)
			level.SetLevel(zap.InfoLevel)
		}
	}

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" {
		encoding = "json"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	output := cfg.OutputPath
	if output == "" {
		output = "stdout"
	}

	zapConfig := zap.Config{
		Level:             level,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
	}
	if cfg.Service != "" {
		zapConfig.InitialFields = map[string]any{"service": cfg.Service}
	}

	l, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger for %s: %w", output, err)
	}
	return l, nil
}
