package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type AnalysisConfig struct {
	// Seed for the temporal simulator, 0 means seeded from the clock
	Seed uint64 `mapstructure:"seed"`
}

// Load reads the YAML file at path, when given, on top of the defaults.
// Environment variables take precedence over both.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "impact-atlas.db")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("analysis.seed", 0)

	bindings := map[string]string{
		"database.path":           "ATLAS_DB_PATH",
		"server.host":             "SERVER_HOST",
		"server.port":             "SERVER_PORT",
		"server.shutdown_timeout": "SERVER_SHUTDOWN_TIMEOUT",
		"analysis.seed":           "ATLAS_ANALYSIS_SEED",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return &cfg, nil
}
