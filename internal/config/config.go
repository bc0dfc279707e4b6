// Package config loads settings from an optional YAML file and applies
// environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config covers both binaries: the console reads the API and Store
// sections, the server reads the Server section.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	DataDir string        `yaml:"data_dir"`
}

// StoreConfig selects the local persistence backend. "file" keeps one JSON
// file per key under Path; "redis" keys into the given address; "memory"
// keeps nothing between runs.
type StoreConfig struct {
	Backend   string `yaml:"backend"`
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 10 * time.Second,
			DataDir: "static",
		},
		Store: StoreConfig{
			Backend: "file",
			Path:    ".sneakerstore",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path (when non-empty and present) over the defaults, then
// applies environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.API.BaseURL, "SNEAKERSTORE_API_URL")
	setString(&c.API.DataDir, "SNEAKERSTORE_DATA_DIR")
	setString(&c.Store.Backend, "SNEAKERSTORE_STORE_BACKEND")
	setString(&c.Store.Path, "SNEAKERSTORE_STORE_PATH")
	setString(&c.Store.RedisAddr, "SNEAKERSTORE_REDIS_ADDR")
	setString(&c.Log.Level, "SNEAKERSTORE_LOG_LEVEL")
	setString(&c.Log.Format, "SNEAKERSTORE_LOG_FORMAT")
	setString(&c.Server.Addr, "SNEAKERSTORE_ADDR")
	setString(&c.Server.DatabaseURL, "DATABASE_URL")
	setString(&c.Server.JWTSecret, "JWT_SECRET")
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
