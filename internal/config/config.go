// Package config loads application configuration from environment variables
// and an optional TOML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends selectable with SKYLANDS_STORE.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr      string
	Store           string
	DBPath          string
	DataDir         string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Load reads configuration and returns a validated Config.
// Every key can be set through an env var with the SKYLANDS_ prefix
// (SKYLANDS_LISTEN_ADDR, SKYLANDS_STORE, SKYLANDS_DB_PATH, SKYLANDS_DATA_DIR,
// SKYLANDS_LOG_LEVEL, SKYLANDS_SHUTDOWN_TIMEOUT). If SKYLANDS_CONFIG names a
// TOML file it is read first and env vars override it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", "127.0.0.1:8080")
	v.SetDefault("store", StoreSQLite)
	v.SetDefault("db_path", "skylands.db")
	v.SetDefault("data_dir", "data")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetEnvPrefix("SKYLANDS")
	v.AutomaticEnv()

	if err := v.BindEnv("config_file", "SKYLANDS_CONFIG"); err != nil {
		return nil, fmt.Errorf("bind SKYLANDS_CONFIG: %w", err)
	}
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	store := strings.ToLower(strings.TrimSpace(v.GetString("store")))
	if store != StoreSQLite && store != StoreFile {
		return nil, fmt.Errorf("SKYLANDS_STORE must be %q or %q, got %q", StoreSQLite, StoreFile, store)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("SKYLANDS_LOG_LEVEL has invalid level %q: %w", v.GetString("log_level"), err)
	}

	rawTimeout := v.GetString("shutdown_timeout")
	shutdownTimeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		return nil, fmt.Errorf("SKYLANDS_SHUTDOWN_TIMEOUT has invalid duration %q: %w", rawTimeout, err)
	}
	if shutdownTimeout <= 0 {
		return nil, fmt.Errorf("SKYLANDS_SHUTDOWN_TIMEOUT must be positive, got %s", shutdownTimeout)
	}

	listenAddr := v.GetString("listen_addr")
	if listenAddr == "" {
		return nil, fmt.Errorf("SKYLANDS_LISTEN_ADDR must not be empty")
	}

	return &Config{
		ListenAddr:      listenAddr,
		Store:           store,
		DBPath:          v.GetString("db_path"),
		DataDir:         v.GetString("data_dir"),
		LogLevel:        level,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
