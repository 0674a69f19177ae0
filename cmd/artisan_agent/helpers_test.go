package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_DataDirPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"data_dir": "/srv/artisan"}`), 0o644))

	origConfig, origDataDir := flagConfig, flagDataDir
	defer func() {
		flagConfig, flagDataDir = origConfig, origDataDir
	}()

	flagConfig = ""
	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir, "flag default without a config file")

	flagConfig = cfgPath
	cfg, err = resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/artisan", cfg.DataDir, "config file beats the flag default")

	require.NoError(t, rootCmd.PersistentFlags().Set("data-dir", "/srv/explicit"))
	cfg, err = resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/explicit", cfg.DataDir, "explicit flag beats the config file")
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	origConfig := flagConfig
	defer func() { flagConfig = origConfig }()

	flagConfig = filepath.Join(t.TempDir(), "missing.json")
	_, err := resolveConfig()
	assert.Error(t, err)
}
