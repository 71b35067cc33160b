package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/config"
)

func parse(t *testing.T, args ...string) (*Flags, *pflag.FlagSet) {
	t.Helper()
	f := NewFlags()
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return f, fs
}

func TestFlagsDefaults(t *testing.T) {
	f, fs := parse(t)
	cfg, err := f.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFlagsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\nalive: \"#\"\ndead: \".\"\n"), 0o644))

	f, fs := parse(t, "--config", path, "--set", "workers=5", "--set", "log_level=debug", "--dead", "_")
	cfg, err := f.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Workers, "--set beats the file")
	assert.Equal(t, "#", cfg.Alive, "file beats defaults")
	assert.Equal(t, "_", cfg.Dead, "explicit flag beats the file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFlagsExplicitBeatsSet(t *testing.T) {
	f, fs := parse(t, "--set", "workers=5", "--workers", "2", "--log-level", "warn", "--metrics-addr", ":9000")
	cfg, err := f.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.MetricsAddr)
}

func TestFlagsInvalid(t *testing.T) {
	f, fs := parse(t, "--set", "nonsense")
	_, err := f.Config(fs)
	assert.ErrorIs(t, err, config.ErrInvalid)

	f, fs = parse(t, "--workers", "0")
	_, err = f.Config(fs)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
