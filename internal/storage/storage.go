package storage

import (
	"context"

	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// Store defines the interface for the split-run ledger. The ledger records
// what each run did per page so operators can audit which candidates were
// extracted and which pages were skipped.
type Store interface {
	// RecordRun stores a complete run report, including per-page outcomes.
	RecordRun(ctx context.Context, report *models.RunReport) error

	// GetRun retrieves the summary of a run by ID
	GetRun(ctx context.Context, runID string) (*models.RunInfo, error)

	// GetRunPages retrieves the per-page outcomes of a run, ordered by page number
	GetRunPages(ctx context.Context, runID string) ([]models.PageOutcome, error)

	// ListRuns returns summaries of all stored runs, newest first
	ListRuns(ctx context.Context) ([]models.RunInfo, error)

	// Close closes the underlying storage
	Close() error
}
