package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, InfoLevel, cfg.Level)
	assert.Equal(t, os.Stderr, cfg.Output)
	assert.True(t, cfg.Pretty)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":    DebugLevel,
		" INFO ":   InfoLevel,
		"warning":  WarnLevel,
		"error":    ErrorLevel,
		"off":      Disabled,
		"nonsense": InfoLevel,
		"":         InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Debug().Msg("hidden")
	Info().Str("platform", "android").Msg("Processing settings for platform")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "android", entry["platform"])
}

func TestForRun_TagsRunID(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	logger := ForRun("01J9Z3QH7W2X8Y4V6T0R5N1M3K")
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "01J9Z3QH7W2X8Y4V6T0R5N1M3K", entry["run"])
}

func TestInit_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: DebugLevel, Output: &buf, Pretty: true})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Error().Str("platform", "ios").Msg("apply failed")

	out := buf.String()
	assert.Contains(t, out, "apply failed")
	assert.Contains(t, out, "platform=")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
