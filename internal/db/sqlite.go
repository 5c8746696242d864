package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"net/url"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemorySQLite opens a private in-memory SQLite database.
const MemorySQLite = ":memory:"

// Pragmas are per connection, so they travel in the DSN and the driver
// applies them to every pooled connection.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// Dates are stored as YYYY-MM-DD text so SQLite's date functions work on them.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS campaign (
		campaign_id   INTEGER PRIMARY KEY,
		campaign_name TEXT NOT NULL,
		campaign_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ad_group (
		ad_group_id   INTEGER PRIMARY KEY,
		ad_group_name TEXT NOT NULL,
		campaign_id   INTEGER NOT NULL REFERENCES campaign (campaign_id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS ad_group_campaign_id_idx ON ad_group (campaign_id)`,
	`CREATE TABLE IF NOT EXISTS ad_group_stats (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		date        TEXT NOT NULL,
		ad_group_id INTEGER NOT NULL REFERENCES ad_group (ad_group_id) ON DELETE CASCADE,
		device      TEXT NOT NULL,
		impressions INTEGER NOT NULL DEFAULT 0,
		clicks      INTEGER NOT NULL DEFAULT 0,
		conversions REAL NOT NULL DEFAULT 0,
		cost        REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS ad_group_stats_ad_group_id_date_idx ON ad_group_stats (ad_group_id, date)`,
	`CREATE INDEX IF NOT EXISTS ad_group_stats_date_idx ON ad_group_stats (date)`,
}

func sqliteDSN(path string) string {
	q := make(url.Values)
	for _, p := range sqlitePragmas {
		q.Add("_pragma", p)
	}
	return "file:" + path + "?" + q.Encode()
}

// OpenSQLite opens the SQLite database at path, creating its directory,
// configuring pragmas and creating the schema when missing.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemorySQLite {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == MemorySQLite {
		// every connection would otherwise get its own empty database
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, stmt := range sqliteSchema {
		if _, err = conn.ExecContext(ctx, stmt); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}
	return conn, nil
}
