// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

The root command binds every flag onto its own flag set and resolves the
Config once cobra has parsed them:

	var cfg cliparse.Config
	cliparse.BindFlags(rootCmd.PersistentFlags(), &cfg)

	// in PersistentPreRunE
	err := cliparse.Resolve(&cfg)

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (default for sqlite: quickly-elect.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminAddress: Election administrator, 0x-prefixed hex (required)
  - CallerKeySalt: Secret for caller key HMAC (required)
  - LogFormat: auto, text or json (default: auto)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  Database type
	--admin              Administrator address
	--key-salt           Caller key salt
	--log-format         Log format

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_ADDRESS   → --admin
	CALLER_KEY_SALT → --key-salt
	LOG_FORMAT      → --log-format

CLI flags take precedence over environment variables. LoadDotEnv reads a
.env file into the environment first; variables already set are kept.

# Validation

Resolve returns an error if required values are missing or malformed:

  - ADMIN_ADDRESS must be a valid hex address
  - CALLER_KEY_SALT must be provided
  - DATABASE_URL must be provided for postgres
*/
package cliparse
