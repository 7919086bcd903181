package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/snowflake"
)

type ExampleRepository interface {
	ListByEntryID(ctx context.Context, entryID int64) ([]model.Example, error)
	Create(ctx context.Context, entryID int64, textEN string, rank int) (model.Example, error)
	ExistsText(ctx context.Context, entryID int64, textEN string) (bool, error)
	MaxRank(ctx context.Context, entryID int64) (int, error)
	Count(ctx context.Context) (int, error)
}

type exampleRepository struct {
	db dbtx
}

func NewExampleRepository(db dbtx) ExampleRepository {
	return &exampleRepository{db: db}
}

func (r *exampleRepository) ListByEntryID(ctx context.Context, entryID int64) ([]model.Example, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, entry_id, text_en, text_es, rank, created_at
		 FROM examples WHERE entry_id = ?
		 ORDER BY rank ASC, id ASC`,
		entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}
	defer rows.Close()

	var examples []model.Example
	for rows.Next() {
		var ex model.Example
		var textES sql.NullString
		var createdAt string
		if err := rows.Scan(&ex.ID, &ex.EntryID, &ex.TextEN, &textES, &ex.Rank, &createdAt); err != nil {
			return nil, fmt.Errorf("scan example: %w", err)
		}
		ex.TextES = stringPtrFromNull(textES)
		ex.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse example created_at: %w", err)
		}
		examples = append(examples, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate examples: %w", err)
	}

	return examples, nil
}

func (r *exampleRepository) Create(ctx context.Context, entryID int64, textEN string, rank int) (model.Example, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO examples (id, entry_id, text_en, rank, created_at) VALUES (?, ?, ?, ?, ?)`,
		id,
		entryID,
		textEN,
		rank,
		formatTime(now),
	)
	if err != nil {
		return model.Example{}, fmt.Errorf("create example: %w", err)
	}

	return model.Example{
		ID:        id,
		EntryID:   entryID,
		TextEN:    textEN,
		Rank:      rank,
		CreatedAt: now,
	}, nil
}

func (r *exampleRepository) ExistsText(ctx context.Context, entryID int64, textEN string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM examples WHERE entry_id = ? AND text_en = ?`,
		entryID,
		textEN,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MaxRank returns the highest rank in use for an entry, 0 when the entry has
// no examples yet.
func (r *exampleRepository) MaxRank(ctx context.Context, entryID int64) (int, error) {
	var max int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(MAX(rank), 0) FROM examples WHERE entry_id = ?`,
		entryID,
	).Scan(&max)
	return max, err
}

func (r *exampleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM examples`).Scan(&count)
	return count, err
}
