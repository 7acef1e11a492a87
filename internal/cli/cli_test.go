package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidnova-code/streetmap/internal/app"
)

func TestParse_JoinsArgumentsIntoPlace(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"Kolkata,", "West", "Bengal,", "India"}, &bytes.Buffer{}, strings.NewReader(""))
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "Kolkata, West Bengal, India", cfg.Place)
	assert.Equal(t, app.DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, app.DefaultCacheDir, cfg.CacheDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	args := []string{
		"-output", "maps/lausanne.png",
		"-cache-dir", "tmpcache",
		"-log-level", "DEBUG",
		"-log-format", "json",
		"-overpass-url", "http://localhost:9999",
		"Lausanne, Switzerland",
	}
	cfg, _, err := Parse(args, &bytes.Buffer{}, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "Lausanne, Switzerland", cfg.Place)
	assert.Equal(t, "maps/lausanne.png", cfg.OutputPath)
	assert.Equal(t, "tmpcache", cfg.CacheDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:9999", cfg.OverpassURL)
}

func TestParse_PromptFallback(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse(nil, out, strings.NewReader("  Guwahati, Assam  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Guwahati, Assam", cfg.Place)
	assert.Contains(t, out.String(), "Enter a city/state/country")
}

func TestParse_NoInputAtAll(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		stdin string
	}{
		{name: "empty stdin", stdin: ""},
		{name: "blank line", stdin: "   \n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(nil, &bytes.Buffer{}, strings.NewReader(tc.stdin))
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok)
			assert.Equal(t, ExitCodeNoInput, exitErr.Code)
			assert.Contains(t, exitErr.Message, "No input provided")
		})
	}
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out, strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidFlagValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "bad log level", args: []string{"-log-level", "verbose", "Lausanne"}},
		{name: "bad log format", args: []string{"-log-format", "xml", "Lausanne"}},
		{name: "unknown flag", args: []string{"-node-size", "3", "Lausanne"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{}, strings.NewReader(""))
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok)
			assert.Equal(t, ExitCodeRenderFailed, exitErr.Code)
		})
	}
}
