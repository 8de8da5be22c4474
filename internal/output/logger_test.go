package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		level     string
		format    string
		verbose   bool
		wantDebug bool
		wantErr   bool
	}{
		"info console":          {level: "info", format: FormatConsole},
		"empty format":          {level: "info", format: ""},
		"debug level":           {level: "debug", format: FormatJSON, wantDebug: true},
		"verbose overrides":     {level: "error", format: FormatJSON, verbose: true, wantDebug: true},
		"bad level":             {level: "loud", format: FormatJSON, wantErr: true},
		"bad format":            {level: "info", format: "xml", wantErr: true},
		"bad level and verbose": {level: "loud", format: FormatJSON, verbose: true, wantErr: true},
	}

	for name, test := range tests {
		var buf bytes.Buffer
		l, err := NewLogger(&buf, test.level, test.format, test.verbose)
		if test.wantErr {
			assert.Error(t, err, name)
			continue
		}
		require.NoError(t, err, name)
		assert.Equal(t, test.wantDebug, l.Core().Enabled(zap.DebugLevel), name)
	}
}

func TestNewLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "info", FormatJSON, false)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hello", zap.String("key", "value"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetLogger(t *testing.T) {
	orig := Logger
	t.Cleanup(func() { SetLogger(orig) })

	nop := zap.NewNop()
	SetLogger(nop)
	assert.Same(t, nop, Logger)
}
