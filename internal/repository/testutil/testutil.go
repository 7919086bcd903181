// Package testutil provides an in-memory database and seed helpers for
// repository tests.
package testutil

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"flashcards/backend/internal/db"
	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/snowflake"
)

var snowflakeOnce sync.Once

// NewTestDB opens a fresh in-memory database with the full schema applied.
// A single connection is enforced so every query sees the same memory DB.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic(err)
		}
	})

	database, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	database.SetMaxOpenConns(1)
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func SeedTopic(t *testing.T, database *sql.DB, name string, isSuggested bool) int64 {
	t.Helper()
	topic, err := repository.NewTopicRepository(database).Create(context.Background(), name, isSuggested)
	if err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	return topic.ID
}

func SeedEntry(t *testing.T, database *sql.DB, headword string, meaningEN, meaningES *string) int64 {
	t.Helper()
	entry, err := repository.NewEntryRepository(database).Create(context.Background(), headword, meaningEN, meaningES)
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return entry.ID
}

func SeedExample(t *testing.T, database *sql.DB, entryID int64, textEN string, rank int) int64 {
	t.Helper()
	example, err := repository.NewExampleRepository(database).Create(context.Background(), entryID, textEN, rank)
	if err != nil {
		t.Fatalf("seed example: %v", err)
	}
	return example.ID
}

func AttachTopicEntry(t *testing.T, database *sql.DB, topicID, entryID int64) {
	t.Helper()
	if _, err := repository.NewTopicRepository(database).AttachEntry(context.Background(), topicID, entryID); err != nil {
		t.Fatalf("attach topic entry: %v", err)
	}
}

func SeedUser(t *testing.T, database *sql.DB, googleSub, email string) int64 {
	t.Helper()
	user, err := repository.NewUserRepository(database).Create(context.Background(), model.User{
		GoogleSub: googleSub,
		Email:     email,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func SeedSession(t *testing.T, database *sql.DB, userID int64, tokenHash string, expiresAt time.Time) {
	t.Helper()
	_, err := repository.NewSessionRepository(database).Create(context.Background(), userID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
}
