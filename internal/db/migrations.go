package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS topics (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  is_suggested INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_topics_name ON topics(lower(name));

CREATE TABLE IF NOT EXISTS entries (
  id INTEGER PRIMARY KEY,
  headword TEXT NOT NULL,
  meaning_en TEXT,
  meaning_es TEXT,
  notes TEXT,
  level TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_headword ON entries(lower(headword));

CREATE TABLE IF NOT EXISTS examples (
  id INTEGER PRIMARY KEY,
  entry_id INTEGER NOT NULL,
  text_en TEXT NOT NULL,
  text_es TEXT,
  rank INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL,
  FOREIGN KEY (entry_id) REFERENCES entries(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_examples_entry_id ON examples(entry_id);

CREATE TABLE IF NOT EXISTS topic_entries (
  topic_id INTEGER NOT NULL,
  entry_id INTEGER NOT NULL,
  added_at TEXT NOT NULL,
  PRIMARY KEY (topic_id, entry_id),
  FOREIGN KEY (topic_id) REFERENCES topics(id) ON DELETE CASCADE,
  FOREIGN KEY (entry_id) REFERENCES entries(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_topic_entries_entry_id ON topic_entries(entry_id);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY,
  google_sub TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL UNIQUE,
  name TEXT,
  avatar_url TEXT,
  created_at TEXT NOT NULL,
  last_login_at TEXT
);

CREATE TABLE IF NOT EXISTS user_sessions (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL,
  token_hash TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL,
  expires_at TEXT NOT NULL,
  revoked_at TEXT,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_user_sessions_user_id ON user_sessions(user_id);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: sessions are looked up by token hash on every
	// authenticated request
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_user_sessions_token_hash ON user_sessions(token_hash)`); err != nil {
		return fmt.Errorf("create idx_user_sessions_token_hash: %w", err)
	}

	// Migration 2: expired-session purge scans by expiry
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_user_sessions_expires_at ON user_sessions(expires_at)`); err != nil {
		return fmt.Errorf("create idx_user_sessions_expires_at: %w", err)
	}

	return nil
}
