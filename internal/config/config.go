package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Output modes.
const (
	OutputSQL    = "sql"
	OutputJSON   = "json"
	OutputDirect = "direct"
)

type Config struct {
	Items         int    `mapstructure:"items"`
	Locations     int    `mapstructure:"locations"`
	Stock         int    `mapstructure:"stock"`
	Movements     int    `mapstructure:"movements"`
	StorageUnits  int    `mapstructure:"storage_units"`
	Output        string `mapstructure:"output"`
	File          string `mapstructure:"file"`
	Workspace     string `mapstructure:"workspace"`
	Seed          int64  `mapstructure:"seed"`
	Clean         bool   `mapstructure:"clean"`
	OnlyMovements bool   `mapstructure:"only_movements"`

	Database Database `mapstructure:"db"`
}

type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"database"`
}

// SetDefaults registers built-in defaults and the environment variable
// each database parameter can be overridden with.
func SetDefaults() {
	viper.SetDefault("items", 1000)
	viper.SetDefault("locations", 50)
	viper.SetDefault("stock", 3000)
	viper.SetDefault("movements", 5000)
	viper.SetDefault("storage_units", 5)
	viper.SetDefault("output", OutputDirect)

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 3307)
	viper.SetDefault("db.user", "root")
	viper.SetDefault("db.password", "")
	viper.SetDefault("db.database", "vessel_test")

	viper.BindEnv("db.host", "DB_HOST")
	viper.BindEnv("db.port", "DB_PORT")
	viper.BindEnv("db.user", "DB_USER")
	viper.BindEnv("db.password", "DB_PASSWORD")
	viper.BindEnv("db.database", "DB_DATABASE")
}

func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputSQL, OutputJSON, OutputDirect:
	default:
		return fmt.Errorf("unsupported output mode: %s (expected sql, json or direct)", c.Output)
	}

	counts := map[string]int{
		"items":     c.Items,
		"locations": c.Locations,
		"stock":     c.Stock,
		"movements": c.Movements,
	}
	for name, v := range counts {
		if v < 0 {
			return fmt.Errorf("%s count cannot be negative", name)
		}
	}

	if c.OnlyMovements && c.Output != OutputDirect {
		return fmt.Errorf("--only-movements requires direct output mode")
	}

	return nil
}

// OutputFile resolves the destination path for the file-based modes.
func (c *Config) OutputFile() string {
	if c.File != "" {
		return c.File
	}
	if c.Output == OutputJSON {
		return "vessel_fake_data.json"
	}
	return "vessel_fake_data.sql"
}
