package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/snowflake"
)

type EntryListFilter struct {
	TopicID *int64
	Query   string
	Limit   int
}

type EntryRepository interface {
	GetByID(ctx context.Context, id int64) (model.Entry, error)
	FindByHeadword(ctx context.Context, headword string) (*model.Entry, error)
	List(ctx context.Context, filter EntryListFilter) ([]model.Entry, error)
	Search(ctx context.Context, query string, limit int) ([]model.SearchHit, error)
	Create(ctx context.Context, headword string, meaningEN, meaningES *string) (model.Entry, error)
	UpdateMeanings(ctx context.Context, id int64, meaningEN, meaningES *string) error
	Count(ctx context.Context) (int, error)
}

type entryRepository struct {
	db dbtx
}

func NewEntryRepository(db dbtx) EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `id, headword, meaning_en, meaning_es, notes, level, created_at, updated_at`

func (r *entryRepository) GetByID(ctx context.Context, id int64) (model.Entry, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ?`,
		id,
	)
	return scanEntry(row)
}

func (r *entryRepository) FindByHeadword(ctx context.Context, headword string) (*model.Entry, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+entryColumns+` FROM entries WHERE lower(headword) = lower(?)`,
		headword,
	)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return &entry, nil
}

func (r *entryRepository) List(ctx context.Context, filter EntryListFilter) ([]model.Entry, error) {
	var args []interface{}
	query := `SELECT e.id, e.headword, e.meaning_en, e.meaning_es, e.notes, e.level, e.created_at, e.updated_at FROM entries e`

	var conditions []string

	if filter.TopicID != nil {
		query += " INNER JOIN topic_entries te ON te.entry_id = e.id"
		conditions = append(conditions, "te.topic_id = ?")
		args = append(args, *filter.TopicID)
	}

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		conditions = append(conditions, "(lower(e.headword) LIKE ? OR lower(e.meaning_en) LIKE ? OR lower(e.meaning_es) LIKE ?)")
		args = append(args, like, like, like)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY e.id"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		entry, err := scanEntryRows(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Search returns entries matching the query, best match first: exact
// headword match, then shorter headwords, then alphabetical, then id.
// Only entries attached to at least one topic are returned, mirroring the
// topic join in the list the frontend renders.
func (r *entryRepository) Search(ctx context.Context, query string, limit int) ([]model.SearchHit, error) {
	like := "%" + strings.ToLower(query) + "%"

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT DISTINCT e.id, e.headword, e.meaning_en, e.meaning_es, e.notes, e.level, e.created_at, e.updated_at
		 FROM entries e
		 INNER JOIN topic_entries te ON te.entry_id = e.id
		 WHERE lower(e.headword) LIKE ? OR lower(e.meaning_en) LIKE ? OR lower(e.meaning_es) LIKE ?
		 ORDER BY
		   CASE WHEN lower(e.headword) = lower(?) THEN 0 ELSE 1 END,
		   length(e.headword) ASC,
		   e.headword ASC,
		   e.id ASC
		 LIMIT ?`,
		like, like, like, query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []model.SearchHit
	for rows.Next() {
		entry, err := scanEntryRows(rows)
		if err != nil {
			return nil, err
		}
		hits = append(hits, model.SearchHit{Entry: entry})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return hits, nil
	}

	if err := r.attachTopics(ctx, hits); err != nil {
		return nil, err
	}

	return hits, nil
}

// attachTopics fills TopicIDs and PrimaryTopic for each hit in a single
// query over topic_entries.
func (r *entryRepository) attachTopics(ctx context.Context, hits []model.SearchHit) error {
	ids := make([]interface{}, len(hits))
	placeholders := make([]string, len(hits))
	index := make(map[int64]*model.SearchHit, len(hits))
	for i := range hits {
		ids[i] = hits[i].Entry.ID
		placeholders[i] = "?"
		index[hits[i].Entry.ID] = &hits[i]
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT te.entry_id, t.id, t.name
		 FROM topic_entries te
		 INNER JOIN topics t ON t.id = te.topic_id
		 WHERE te.entry_id IN (`+strings.Join(placeholders, ", ")+`)
		 ORDER BY te.entry_id, te.added_at, t.id`,
		ids...,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID int64
		var ref model.TopicRef
		if err := rows.Scan(&entryID, &ref.ID, &ref.Name); err != nil {
			return err
		}
		hit := index[entryID]
		if hit == nil {
			continue
		}
		hit.TopicIDs = append(hit.TopicIDs, ref.ID)
		if hit.PrimaryTopic == nil && !strings.EqualFold(ref.Name, "mixed") {
			topic := ref
			hit.PrimaryTopic = &topic
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// No non-mixed topic: fall back to the first association.
	for i := range hits {
		if hits[i].PrimaryTopic == nil && len(hits[i].TopicIDs) > 0 {
			first := hits[i].TopicIDs[0]
			row := r.db.QueryRowContext(ctx, `SELECT id, name FROM topics WHERE id = ?`, first)
			var ref model.TopicRef
			if err := row.Scan(&ref.ID, &ref.Name); err != nil {
				return err
			}
			hits[i].PrimaryTopic = &ref
		}
	}

	return nil
}

func (r *entryRepository) Create(ctx context.Context, headword string, meaningEN, meaningES *string) (model.Entry, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO entries (id, headword, meaning_en, meaning_es, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		headword,
		nullableString(meaningEN),
		nullableString(meaningES),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	return model.Entry{
		ID:        id,
		Headword:  headword,
		MeaningEN: meaningEN,
		MeaningES: meaningES,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateMeanings overwrites only the meanings passed as non-nil.
func (r *entryRepository) UpdateMeanings(ctx context.Context, id int64, meaningEN, meaningES *string) error {
	var sets []string
	var args []interface{}

	if meaningEN != nil {
		sets = append(sets, "meaning_en = ?")
		args = append(args, *meaningEN)
	}
	if meaningES != nil {
		sets = append(sets, "meaning_es = ?")
		args = append(args, *meaningES)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(time.Now()), id)

	_, err := r.db.ExecContext(
		ctx,
		`UPDATE entries SET `+strings.Join(sets, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update entry meanings: %w", err)
	}
	return nil
}

func (r *entryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count)
	return count, err
}

func scanEntry(row *sql.Row) (model.Entry, error) {
	var e model.Entry
	var meaningEN, meaningES, notes, level sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&e.ID, &e.Headword, &meaningEN, &meaningES, &notes, &level, &createdAt, &updatedAt)
	if err != nil {
		return model.Entry{}, err
	}

	e.MeaningEN = stringPtrFromNull(meaningEN)
	e.MeaningES = stringPtrFromNull(meaningES)
	e.Notes = stringPtrFromNull(notes)
	e.Level = stringPtrFromNull(level)
	e.CreatedAt, _ = parseTime(createdAt)
	e.UpdatedAt, _ = parseTime(updatedAt)

	return e, nil
}

func scanEntryRows(rows *sql.Rows) (model.Entry, error) {
	var e model.Entry
	var meaningEN, meaningES, notes, level sql.NullString
	var createdAt, updatedAt string

	err := rows.Scan(&e.ID, &e.Headword, &meaningEN, &meaningES, &notes, &level, &createdAt, &updatedAt)
	if err != nil {
		return model.Entry{}, err
	}

	e.MeaningEN = stringPtrFromNull(meaningEN)
	e.MeaningES = stringPtrFromNull(meaningES)
	e.Notes = stringPtrFromNull(notes)
	e.Level = stringPtrFromNull(level)
	e.CreatedAt, _ = parseTime(createdAt)
	e.UpdatedAt, _ = parseTime(updatedAt)

	return e, nil
}
