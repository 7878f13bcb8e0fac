package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id       TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	product_id        TEXT PRIMARY KEY,
	title             TEXT NOT NULL,
	category          TEXT NOT NULL,
	description       TEXT NOT NULL,
	closing_at        TIMESTAMP NOT NULL,
	current_bid       REAL NOT NULL,
	owner_id          TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	is_active         INTEGER NOT NULL DEFAULT 1,
	leading_bidder_id TEXT NOT NULL DEFAULT '',
	version           INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS favorites (
	user_id    TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	product_id TEXT NOT NULL REFERENCES products(product_id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, product_id)
);
`

// Open opens a SQLite database at the given path and prepares it for use.
// It enables WAL mode and foreign keys and applies the schema. Use ":memory:"
// for an ephemeral database.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement; favorite cascade deletes rely on it.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite serializes writers anyway; a single connection avoids
	// SQLITE_BUSY surprises under concurrent use.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}
