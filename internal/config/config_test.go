package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnalign-core/align"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, align.DefaultScheme, cfg.Scheme())
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "dnalign.toml", `
[scoring]
match = 2
mismatch = -3

[limits]
max_length = 500

[server]
addr = ":9000"
read_header_timeout = "2s"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, align.Scheme{Match: 2, Mismatch: -3, Gap: -2}, cfg.Scheme())
	assert.Equal(t, 500, cfg.Limits.MaxLength)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout.Std())
	assert.Equal(t, "text", cfg.Output.Format, "unset keys keep defaults")
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "dnalign.yaml", `
scoring:
  gap: -4
output:
  format: json
  wrap: 80
server:
  read_header_timeout: 750ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -4, cfg.Scoring.Gap)
	assert.Equal(t, 1, cfg.Scoring.Match)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 80, cfg.Output.Wrap)
	assert.Equal(t, 750*time.Millisecond, cfg.Server.ReadHeaderTimeout.Std())
}

func TestLoadFromEnv(t *testing.T) {
	path := write(t, "env.toml", "[limits]\nmax_length = 7\n")
	t.Setenv(EnvConfig, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Limits.MaxLength)
}

func TestLoadNoFile(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Scoring.Gap = 1
	cfg.Limits.MaxLength = -1
	cfg.Output.Color = "sometimes"
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"scoring", "limits.max_length", "output.color"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestUnknownTOMLKey(t *testing.T) {
	path := write(t, "typo.toml", "[scoring]\nmatchh = 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestInvalidSchemeInFile(t *testing.T) {
	path := write(t, "bad.toml", "[scoring]\nmatch = -1\nmismatch = -1\n")
	_, err := Load(path)
	require.Error(t, err)
}
