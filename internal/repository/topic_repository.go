package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/snowflake"
)

type TopicRepository interface {
	Create(ctx context.Context, name string, isSuggested bool) (model.Topic, error)
	GetByID(ctx context.Context, id int64) (model.Topic, error)
	FindByName(ctx context.Context, name string) (*model.Topic, error)
	List(ctx context.Context) ([]model.Topic, error)
	AttachEntry(ctx context.Context, topicID, entryID int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

type topicRepository struct {
	db dbtx
}

func NewTopicRepository(db dbtx) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, name string, isSuggested bool) (model.Topic, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	suggested := 0
	if isSuggested {
		suggested = 1
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO topics (id, name, is_suggested, created_at) VALUES (?, ?, ?, ?)`,
		id,
		name,
		suggested,
		formatTime(now),
	)
	if err != nil {
		return model.Topic{}, fmt.Errorf("create topic: %w", err)
	}

	return model.Topic{
		ID:          id,
		Name:        name,
		IsSuggested: isSuggested,
		CreatedAt:   now,
	}, nil
}

func (r *topicRepository) GetByID(ctx context.Context, id int64) (model.Topic, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, is_suggested, created_at FROM topics WHERE id = ?`, id)
	return scanTopic(row)
}

func (r *topicRepository) FindByName(ctx context.Context, name string) (*model.Topic, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, name, is_suggested, created_at FROM topics WHERE lower(name) = lower(?)`,
		name,
	)
	topic, err := scanTopic(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find topic: %w", err)
	}
	return &topic, nil
}

func (r *topicRepository) List(ctx context.Context) ([]model.Topic, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, is_suggested, created_at FROM topics ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var topic model.Topic
		var suggested int
		var createdAt string
		if err := rows.Scan(&topic.ID, &topic.Name, &suggested, &createdAt); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topic.IsSuggested = suggested == 1
		topic.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse topic created_at: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}

	return topics, nil
}

// AttachEntry links an entry to a topic. Returns true if the link was newly
// created, false if it already existed.
func (r *topicRepository) AttachEntry(ctx context.Context, topicID, entryID int64) (bool, error) {
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO topic_entries (topic_id, entry_id, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(topic_id, entry_id) DO NOTHING`,
		topicID,
		entryID,
		formatTime(time.Now()),
	)
	if err != nil {
		return false, fmt.Errorf("attach entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *topicRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM topics`).Scan(&count)
	return count, err
}

func scanTopic(row *sql.Row) (model.Topic, error) {
	var topic model.Topic
	var suggested int
	var createdAt string
	if err := row.Scan(&topic.ID, &topic.Name, &suggested, &createdAt); err != nil {
		return model.Topic{}, err
	}
	topic.IsSuggested = suggested == 1
	var err error
	topic.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.Topic{}, fmt.Errorf("parse topic created_at: %w", err)
	}
	return topic, nil
}
