package storage

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the database tables if they don't exist
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		input TEXT,
		exam_board TEXT,
		output_dir TEXT,
		page_count INTEGER,
		extracted INTEGER,
		skipped INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS run_pages (
		run_id TEXT NOT NULL,
		page_number INTEGER NOT NULL,
		uci TEXT,
		output_file TEXT,
		source TEXT,
		candidates INTEGER,
		skipped INTEGER,
		PRIMARY KEY (run_id, page_number),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_run_pages_uci ON run_pages(uci);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordRun stores a complete run report, including per-page outcomes
func (s *SQLiteStore) RecordRun(ctx context.Context, report *models.RunReport) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, input, exam_board, output_dir, page_count, extracted, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.RunID, report.Input, report.ExamBoard, report.OutputDir,
		report.PageCount, report.Extracted, report.Skipped)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, page := range report.Pages {
		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO run_pages (run_id, page_number, uci, output_file, source, candidates, skipped)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, report.RunID, page.PageNumber, page.UCI, page.OutputFile,
			string(page.Source), page.Candidates, boolToInt(page.Skipped))
		if err != nil {
			return fmt.Errorf("failed to insert page %d: %w", page.PageNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRun retrieves the summary of a run by ID
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*models.RunInfo, error) {
	var info models.RunInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT id, input, exam_board, output_dir, page_count, extracted, skipped, created_at
		FROM runs WHERE id = ?
	`, runID).Scan(&info.RunID, &info.Input, &info.ExamBoard, &info.OutputDir,
		&info.PageCount, &info.Extracted, &info.Skipped, &info.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &info, nil
}

// GetRunPages retrieves the per-page outcomes of a run, ordered by page number
func (s *SQLiteStore) GetRunPages(ctx context.Context, runID string) ([]models.PageOutcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page_number, uci, output_file, source, candidates, skipped
		FROM run_pages WHERE run_id = ? ORDER BY page_number
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run pages: %w", err)
	}
	defer rows.Close()

	var pages []models.PageOutcome
	for rows.Next() {
		var page models.PageOutcome
		var source string
		var skipped int
		if err := rows.Scan(&page.PageNumber, &page.UCI, &page.OutputFile,
			&source, &page.Candidates, &skipped); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		page.Source = models.RecognitionSource(source)
		page.Skipped = skipped != 0
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// ListRuns returns summaries of all stored runs, newest first
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]models.RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input, exam_board, output_dir, page_count, extracted, skipped, created_at
		FROM runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.RunInfo
	for rows.Next() {
		var info models.RunInfo
		if err := rows.Scan(&info.RunID, &info.Input, &info.ExamBoard, &info.OutputDir,
			&info.PageCount, &info.Extracted, &info.Skipped, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GenerateRunID creates a unique run ID from the input name and start time.
func GenerateRunID(input string, startedAt time.Time) string {
	return fmt.Sprintf("run_%x_%d", hashString(input), startedAt.Unix())
}

// hashString creates a simple hash of a string
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
