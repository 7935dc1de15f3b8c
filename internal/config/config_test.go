package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "users.json", c.UsersFile)
	assert.Equal(t, "drawer_data.json", c.ItemsFile)
	assert.Equal(t, StorageJSON, c.Storage)
	assert.Equal(t, "drawerfinder.db", c.DatabaseDSN)
	assert.Equal(t, "sha256", c.PasswordScheme)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"drawerfinder"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"storage":   "sqlite",
		"log_level": "debug",
	})
	os.Args = []string{"drawerfinder", "-c", path, "-l", "error"}

	cfg := LoadConfig()

	assert.Equal(t, StorageSQLite, cfg.Storage, "json value kept when no flag")
	assert.Equal(t, "error", cfg.LogLevel, "flag wins over json")
	assert.Equal(t, "users.json", cfg.UsersFile, "default kept when neither sets it")
}
