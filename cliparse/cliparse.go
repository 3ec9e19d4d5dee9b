// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	defaultPort      = 3318
	defaultSQLiteURL = "quickly-elect.db"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminAddress  string
	CallerKeySalt string
	LogFormat     string
}

// Admin returns the configured administrator as an address. Only valid after
// Resolve succeeded.
func (c Config) Admin() common.Address {
	return common.HexToAddress(c.AdminAddress)
}

// BindFlags registers every config flag on fs.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")

	fs.StringVar(&cfg.AdminAddress, "admin", "", "Administrator address (0x...)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text or json)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CallerKeySalt, "key-salt", "", "Caller key salt (prefer env)")
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Resolve falls back to environment variables for every unset field, applies
// defaults and validates the result. Values already in cfg win.
func Resolve(cfg *Config) error {
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != DatabaseSQLite {
			return errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if cfg.AdminAddress == "" {
		cfg.AdminAddress = os.Getenv("ADMIN_ADDRESS")
	}
	if cfg.AdminAddress == "" {
		return errors.New("ADMIN_ADDRESS required")
	}
	if !common.IsHexAddress(cfg.AdminAddress) {
		return fmt.Errorf("invalid administrator address %q", cfg.AdminAddress)
	}
	cfg.AdminAddress = common.HexToAddress(cfg.AdminAddress).Hex()

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
	}
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "auto"
	case "auto", "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	// Secrets - MUST be provided
	if cfg.CallerKeySalt == "" {
		cfg.CallerKeySalt = os.Getenv("CALLER_KEY_SALT")
	}
	if cfg.CallerKeySalt == "" {
		return errors.New("CALLER_KEY_SALT required")
	}

	return nil
}
