package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFresh(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	SetDefaults()
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := loadFresh(t)

	assert.Equal(t, 1000, cfg.Items)
	assert.Equal(t, 50, cfg.Locations)
	assert.Equal(t, 3000, cfg.Stock)
	assert.Equal(t, 5000, cfg.Movements)
	assert.Equal(t, 5, cfg.StorageUnits)
	assert.Equal(t, OutputDirect, cfg.Output)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "vessel_test", cfg.Database.Name)
}

func TestEnvironmentOverridesDatabaseParams(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "vessel")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "vessel_demo")

	cfg := loadFresh(t)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "vessel", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "vessel_demo", cfg.Database.Name)
}

func TestValidate(t *testing.T) {
	cfg := loadFresh(t)
	require.NoError(t, cfg.Validate())

	cfg.Output = "csv"
	require.Error(t, cfg.Validate())

	cfg = loadFresh(t)
	cfg.Items = -1
	require.Error(t, cfg.Validate())

	cfg = loadFresh(t)
	cfg.OnlyMovements = true
	require.NoError(t, cfg.Validate(), "only-movements is fine in direct mode")
	cfg.Output = OutputSQL
	require.Error(t, cfg.Validate())
}

func TestOutputFile(t *testing.T) {
	cfg := &Config{Output: OutputSQL}
	assert.Equal(t, "vessel_fake_data.sql", cfg.OutputFile())

	cfg.Output = OutputJSON
	assert.Equal(t, "vessel_fake_data.json", cfg.OutputFile())

	cfg.File = "custom.json"
	assert.Equal(t, "custom.json", cfg.OutputFile())
}
