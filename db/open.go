// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// driverNames maps config database types to registered database/sql drivers.
var driverNames = map[string]string{
	"sqlite":   "sqlite",
	"postgres": "postgres",
}

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	driver, ok := driverNames[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if driver == "sqlite" {
		// One writer at a time; also keeps ":memory:" databases on a single
		// connection.
		conn.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}
