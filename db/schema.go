// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"
	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

// Supported database types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if dbType == TypeSQLite {
		url = withForeignKeys(url)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// withForeignKeys turns on foreign key enforcement for every pooled SQLite
// connection. SQLite leaves it off by default, which would skip ON DELETE CASCADE.
func withForeignKeys(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Tournaments
CREATE TABLE IF NOT EXISTS tournament (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    venue TEXT NOT NULL,
    date TEXT NOT NULL,
    source TEXT NOT NULL,
    is_processed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (name, date)
);

CREATE INDEX IF NOT EXISTS idx_tournament_date ON tournament(date);

-- Boards
CREATE TABLE IF NOT EXISTS board (
    id TEXT PRIMARY KEY,
    tournament_id TEXT NOT NULL REFERENCES tournament(id) ON DELETE CASCADE,
    board_number INTEGER NOT NULL CHECK (board_number > 0),
    dealer TEXT NOT NULL CHECK (dealer IN ('NORTH', 'EAST', 'SOUTH', 'WEST')),
    vulnerability TEXT NOT NULL,
    deal TEXT NOT NULL,
    north_hand TEXT NOT NULL,
    east_hand TEXT NOT NULL,
    south_hand TEXT NOT NULL,
    west_hand TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (tournament_id, board_number)
);

CREATE INDEX IF NOT EXISTS idx_board_tournament_id ON board(tournament_id);
`
