package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Point the config dir at an empty temp dir so no user file leaks in.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "class-logs.xlsx", cfg.Report.Filename)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.DB.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CLASSLOG_SERVER_ADDR", ":9999")
	t.Setenv("CLASSLOG_DB_PATH", ":memory:")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, ":memory:", cfg.DB.Path)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CLASSLOG_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Report.Filename = ""
	require.Error(t, cfg.Validate())
}
