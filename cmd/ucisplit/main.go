package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/ocr"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/pdf"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/splitter"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/storage"
	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// An input path on the command line beats the environment.
	if len(os.Args) > 1 {
		cfg.Split.InputPath = os.Args[1]
		cfg.Split.InputURL = ""
	}

	log, err := logger.NewLogger(logger.LogConfig{
		Level:  cfg.App.LogLevel,
		Output: cfg.App.LogOutput,
	})
	if err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	engine, err := ocr.NewEngine(cfg.OCR, log)
	if err != nil {
		log.Fatal("Failed to create OCR engine: %v", err)
	}

	store := openLedger(cfg, log)
	if store != nil {
		defer store.Close()
	}

	source := models.SourceInfo{Path: cfg.Split.InputPath, URL: cfg.Split.InputURL}
	data, err := pdf.GetData(ctx, source)
	if err != nil {
		log.Fatal("Failed to load input PDF: %v", err)
	}

	input := cfg.Split.InputPath
	if input == "" {
		input = cfg.Split.InputURL
	}

	s := splitter.New(cfg, engine, store, log)
	report, err := s.Split(ctx, data, filepath.Base(input))
	if err != nil {
		log.Fatal("Split failed: %v", err)
	}

	fmt.Printf("%s: %d pages, %d extracted, %d skipped\n",
		report.Input, report.PageCount, report.Extracted, report.Skipped)
	for _, page := range report.Pages {
		if page.Skipped {
			fmt.Printf("  page %d: no valid UCI (%d candidates)\n", page.PageNumber, page.Candidates)
			continue
		}
		fmt.Printf("  page %d: %s -> %s (%s)\n", page.PageNumber, page.UCI, page.OutputFile, page.Source)
	}
}

// openLedger opens the run ledger. A broken ledger degrades to a run without
// history rather than blocking the split.
func openLedger(cfg *config.Config, log logger.Logger) storage.Store {
	if dir := filepath.Dir(cfg.App.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn("Failed to create ledger directory: %v", err)
			return nil
		}
	}
	store, err := storage.NewSQLiteStore(cfg.App.DBPath)
	if err != nil {
		log.Warn("Failed to open run ledger: %v", err)
		return nil
	}
	return store
}
