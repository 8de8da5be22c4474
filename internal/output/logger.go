/*
PURPOSE:
  Provides the structured logger shared by the harness and the application.
  Wraps zap for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.
  - --verbose turns on debug output.

  Implementation-discovered:
  - Logs go to stdout so stderr only ever carries the failure report.
  - Needs console and JSON encodings (JSON for non-interactive use).

ARCHITECTURE INTEGRATION:
  - Configured by: internal/cli (after options and settings are resolved)
  - Used by: internal/cli, internal/forge

ERROR HANDLING:
  - NewLogger returns an error for unknown levels or formats.

IMPLEMENTATION RULES:
  - Use go.uber.org/zap.
  - Level strings are parsed with zapcore.ParseLevel.

USAGE:
  output.Logger.Debug("message", zap.String("key", "value"))

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - Update when adding new encodings.
*/

package output

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var Logger *zap.Logger

func init() {
	// Default generic logger until the harness configures one.
	l, err := NewLogger(os.Stdout, "info", FormatConsole, false)
	if err != nil {
		l = zap.NewNop()
	}
	Logger = l
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *zap.Logger) {
	Logger = l
}

// NewLogger builds a logger writing to w. When verbose is set the level is
// forced to debug regardless of level.
func NewLogger(w io.Writer, level, format string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case FormatConsole, "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
