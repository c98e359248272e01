package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"marine-guardian/internal/logger"
	"marine-guardian/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces every environment override, e.g. MARINE_DATABASE_PATH
	EnvPrefix = "MARINE"

	DefaultDataDir  = "./data"
	DefaultDBName   = "marine_life.db"
	DefaultConfigFn = "marine-guardian"
	DefaultDotEnv   = ".env"
)

// Config holds all runtime settings
type Config struct {
	Database struct {
		// DataDir is used to derive Path when Path is not set
		DataDir string `mapstructure:"data_dir"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"database"`

	Log struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`

	Window struct {
		Width  float32 `mapstructure:"width"`
		Height float32 `mapstructure:"height"`
	} `mapstructure:"window"`

	UI struct {
		DefaultSort string `mapstructure:"default_sort"`
	} `mapstructure:"ui"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.data_dir", DefaultDataDir)
	v.SetDefault("database.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("ui.default_sort", string(models.SortInsertion))
}

// New returns a viper instance with defaults, env binding and the config
// search path applied. configFile overrides the search path when non-empty.
func New(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigFn)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	return v
}

// LoadDotEnv copies KEY=value lines from path into the environment so that
// MARINE_* overrides can live in a .env file. Variables already set win. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultDotEnv
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the optional config file and decodes v into a Config.
// A missing file in the search path is not an error; a missing explicit
// file is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.ResolvePaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolvePaths derives Database.Path from Database.DataDir when unset
func (c *Config) ResolvePaths() {
	if c.Database.DataDir == "" {
		c.Database.DataDir = DefaultDataDir
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.Database.DataDir, DefaultDBName)
	} else {
		c.Database.Path = filepath.Clean(c.Database.Path)
	}
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := models.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	return nil
}

// SortKey returns the parsed default sort order
func (c *Config) SortKey() models.SortKey {
	key, _ := models.ParseSortKey(c.UI.DefaultSort)
	return key
}
