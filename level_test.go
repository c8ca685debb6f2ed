// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"error": LevelError,
		"Warn":  LevelWarn,
		"INFO":  LevelInfo,
		"debug": LevelDebug,
		"Trace": LevelTrace,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("bogus")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Contains(t, Level(99).String(), "level(")
}

func TestLevelEnabledAt(t *testing.T) {
	// a Debug event is enabled when the configured maximum is Debug
	assert.True(t, EnabledAt(LevelDebug, LevelDebug))
	// a Trace event is not enabled when the configured maximum is Debug
	assert.False(t, EnabledAt(LevelTrace, LevelDebug))
	// an Error event is always enabled, being the least verbose level
	assert.True(t, EnabledAt(LevelError, LevelError))
}

func TestLevelMax(t *testing.T) {
	assert.Equal(t, LevelTrace, LevelDebug.Max(LevelTrace))
	assert.Equal(t, LevelDebug, LevelDebug.Max(LevelInfo))
}

func TestLevelUnmarshalYAML(t *testing.T) {
	var l Level
	require.NoError(t, yaml.Unmarshal([]byte(`"debug"`), &l))
	assert.Equal(t, LevelDebug, l)

	var bad Level
	assert.Error(t, yaml.Unmarshal([]byte(`"nope"`), &bad))
}
