package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, ":3050", cfg.Address)
	assert.Empty(t, cfg.Static)

	p, err := cfg.Provider()
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestParseFile(t *testing.T) {
	t.Setenv("TTS_URL", "https://tts.example.com")

	path := writeConfig(t, `
address: ":8080"
static: ./public

upstream:
  url: ${TTS_URL}
  timeout: 5s
  proxy:
    url: http://proxy.local:3128
`)

	cfg, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "./public", cfg.Static)

	_, err = cfg.Provider()
	assert.NoError(t, err)
}

func TestParseEmptyFile(t *testing.T) {
	cfg, err := Parse(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ":3050", cfg.Address)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(writeConfig(t, "port: 3050\n"))
	assert.Error(t, err)
}

func TestParseInvalidProxy(t *testing.T) {
	_, err := Parse(writeConfig(t, "upstream:\n  proxy:\n    url: \"://bad\"\n"))
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProviderNotConfigured(t *testing.T) {
	cfg := &Config{}

	_, err := cfg.Provider()
	assert.Error(t, err)
}
