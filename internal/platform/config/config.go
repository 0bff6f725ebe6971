// Package config はアプリケーションの実行時設定を環境変数から読み込みます。
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings for the server process.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT, default=3000"`

	// LogLevel is the minimum slog level: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BcryptCost is the bcrypt cost factor for password hashing.
	// 0 selects the library default.
	BcryptCost int `env:"BCRYPT_COST, default=10"`

	DB DBConfig
}

// DBConfig selects the relational engine and its connection string.
type DBConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string `env:"DB_DRIVER, default=sqlite"`

	// DSN is the driver-specific connection string. For sqlite this is
	// the database file path.
	DSN string `env:"DB_DSN, default=./data.db"`
}

// Load は環境変数から設定を読み込みます。
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
