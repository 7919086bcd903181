package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/repository"
)

// ImportResult summarizes a CSV import run.
type ImportResult struct {
	TopicsCreated   int `json:"topicsCreated"`
	EntriesCreated  int `json:"entriesCreated"`
	EntriesUpdated  int `json:"entriesUpdated"`
	LinksCreated    int `json:"linksCreated"`
	ExamplesCreated int `json:"examplesCreated"`
	RowsSkipped     int `json:"rowsSkipped"`
	RowsTotal       int `json:"rowsTotal"`
}

// ImportProgress reports per-row progress during an import.
type ImportProgress struct {
	Total    int    `json:"total"`
	Current  int    `json:"current"`
	Headword string `json:"headword,omitempty"`
	Status   string `json:"status"` // "started", "importing", "done", "error"
}

type ImportService interface {
	// Import runs the CSV seeding semantics in a single transaction.
	// Any failure rolls the whole run back.
	Import(ctx context.Context, reader io.Reader, onProgress func(ImportProgress)) (ImportResult, error)
}

type importService struct {
	db        *sql.DB
	sanitizer *bluemonday.Policy
}

func NewImportService(db *sql.DB) ImportService {
	return &importService{
		db:        db,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Accepted header spellings, first match wins.
var (
	topicHeaders    = []string{"Topic"}
	headwordHeaders = []string{"Entrie", "Entry"}
	meaningENHeader = []string{"Meaning_En"}
	meaningESHeader = []string{"Meaning_Es"}
	exampleHeaders  = []string{"Example Sentence", "Example_Sentence"}
)

type csvColumns struct {
	topic     int
	headword  int
	meaningEN int
	meaningES int
	example   int
}

type csvRow struct {
	topic     string
	headword  string
	meaningEN string
	meaningES string
	example   string
}

func (s *importService) Import(ctx context.Context, reader io.Reader, onProgress func(ImportProgress)) (ImportResult, error) {
	rows, err := s.parseCSV(reader)
	if err != nil {
		return ImportResult{}, err
	}

	total := len(rows)
	logger.Info("csv import parsed", "module", "service", "action", "import", "resource", "csv", "result", "ok", "count", total)
	if onProgress != nil {
		onProgress(ImportProgress{Total: total, Current: 0, Status: "started"})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("begin import tx: %w", err)
	}
	defer tx.Rollback()

	topics := repository.NewTopicRepository(tx)
	entries := repository.NewEntryRepository(tx)
	examples := repository.NewExampleRepository(tx)

	result := ImportResult{RowsTotal: total}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if row.topic == "" || row.headword == "" || row.example == "" {
			logger.Warn("csv row skipped", "module", "service", "action", "import", "resource", "csv", "result", "skipped", "row", i+2, "headword", row.headword)
			result.RowsSkipped++
			continue
		}

		if err := s.importRow(ctx, topics, entries, examples, row, &result); err != nil {
			logger.Error("csv import failed", "module", "service", "action", "import", "resource", "csv", "result", "failed", "row", i+2, "error", err)
			return result, err
		}

		if onProgress != nil {
			onProgress(ImportProgress{Total: total, Current: i + 1, Headword: row.headword, Status: "importing"})
		}
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit import tx: %w", err)
	}

	logger.Info("csv import completed", "module", "service", "action", "import", "resource", "csv", "result", "ok",
		"topics_created", result.TopicsCreated,
		"entries_created", result.EntriesCreated,
		"entries_updated", result.EntriesUpdated,
		"links_created", result.LinksCreated,
		"examples_created", result.ExamplesCreated,
		"rows_skipped", result.RowsSkipped,
	)
	return result, nil
}

func (s *importService) importRow(
	ctx context.Context,
	topics repository.TopicRepository,
	entries repository.EntryRepository,
	examples repository.ExampleRepository,
	row csvRow,
	result *ImportResult,
) error {
	topic, err := topics.FindByName(ctx, row.topic)
	if err != nil {
		return err
	}
	if topic == nil {
		created, err := topics.Create(ctx, row.topic, false)
		if err != nil {
			return err
		}
		topic = &created
		result.TopicsCreated++
	}

	var meaningEN, meaningES *string
	if row.meaningEN != "" {
		meaningEN = &row.meaningEN
	}
	if row.meaningES != "" {
		meaningES = &row.meaningES
	}

	entry, err := entries.FindByHeadword(ctx, row.headword)
	if err != nil {
		return err
	}
	if entry == nil {
		created, err := entries.Create(ctx, row.headword, meaningEN, meaningES)
		if err != nil {
			return err
		}
		entry = &created
		result.EntriesCreated++
	} else {
		// Only push meanings the CSV actually provides and that differ
		// from what is stored.
		var updateEN, updateES *string
		if meaningEN != nil && (entry.MeaningEN == nil || *entry.MeaningEN != *meaningEN) {
			updateEN = meaningEN
		}
		if meaningES != nil && (entry.MeaningES == nil || *entry.MeaningES != *meaningES) {
			updateES = meaningES
		}
		if updateEN != nil || updateES != nil {
			if err := entries.UpdateMeanings(ctx, entry.ID, updateEN, updateES); err != nil {
				return err
			}
			result.EntriesUpdated++
		}
	}

	linked, err := topics.AttachEntry(ctx, topic.ID, entry.ID)
	if err != nil {
		return err
	}
	if linked {
		result.LinksCreated++
	}

	exists, err := examples.ExistsText(ctx, entry.ID, row.example)
	if err != nil {
		return err
	}
	if !exists {
		maxRank, err := examples.MaxRank(ctx, entry.ID)
		if err != nil {
			return err
		}
		if _, err := examples.Create(ctx, entry.ID, row.example, maxRank+1); err != nil {
			return err
		}
		result.ExamplesCreated++
	}

	return nil
}

func (s *importService) parseCSV(reader io.Reader) ([]csvRow, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, ErrInvalid
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []csvRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ErrInvalid
		}
		rows = append(rows, csvRow{
			topic:     s.cleanField(record, cols.topic),
			headword:  s.cleanField(record, cols.headword),
			meaningEN: s.cleanField(record, cols.meaningEN),
			meaningES: s.cleanField(record, cols.meaningES),
			example:   s.cleanField(record, cols.example),
		})
	}
	return rows, nil
}

// cleanField reads a column, strips any HTML and trims whitespace.
func (s *importService) cleanField(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(s.sanitizer.Sanitize(record[idx]))
}

func resolveColumns(header []string) (csvColumns, error) {
	cols := csvColumns{
		topic:     findColumn(header, topicHeaders),
		headword:  findColumn(header, headwordHeaders),
		meaningEN: findColumn(header, meaningENHeader),
		meaningES: findColumn(header, meaningESHeader),
		example:   findColumn(header, exampleHeaders),
	}
	if cols.topic < 0 || cols.headword < 0 || cols.example < 0 {
		return cols, ErrInvalid
	}
	return cols, nil
}

func findColumn(header []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), candidate) {
				return i
			}
		}
	}
	return -1
}
