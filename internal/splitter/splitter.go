// Package splitter drives the whole pipeline: split the source PDF into
// pages, resolve each page's UCI from its text layer or OCR, and write one
// output PDF per identified candidate.
package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/ocr"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/pdf"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/storage"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/uci"
	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// Splitter holds the collaborators a split run needs. The OCR engine and the
// store are optional: a nil engine limits recognition to embedded text
// layers, a nil store skips the run ledger.
type Splitter struct {
	split  config.SplitConfig
	ocrCfg config.OCRConfig
	engine ocr.Engine
	store  storage.Store
	log    logger.Logger
}

// New creates a Splitter.
func New(cfg *config.Config, engine ocr.Engine, store storage.Store, log logger.Logger) *Splitter {
	return &Splitter{
		split:  cfg.Split,
		ocrCfg: cfg.OCR,
		engine: engine,
		store:  store,
		log:    log,
	}
}

// Split processes every page of data and writes one {UCI}_{examBoard}.pdf per
// page with a valid UCI into the output directory. Pages that yield no valid
// UCI are logged and skipped; they never fail the run. input names the source
// document for the report and the ledger.
func (s *Splitter) Split(ctx context.Context, data models.PdfData, input string) (*models.RunReport, error) {
	pages, err := pdf.SplitPdf(data)
	if err != nil {
		return nil, fmt.Errorf("failed to split PDF into pages: %w", err)
	}
	if limit := s.split.PageLimit; limit > 0 && len(pages) > limit {
		s.log.Info("Limiting run to the first %d of %d pages", limit, len(pages))
		pages = pages[:limit]
	}

	if err := os.MkdirAll(s.split.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	s.log.Info("Processing %s: %d pages, engine=%s", input, len(pages), s.engineName())

	outcomes, err := parallelProcess(ctx, pages, s.split.Workers,
		func(ctx context.Context, idx int, page models.PdfPageData) (models.PageOutcome, error) {
			return s.resolvePage(ctx, idx, page), nil
		})
	if err != nil {
		return nil, err
	}

	report := &models.RunReport{
		RunID:     storage.GenerateRunID(input, time.Now()),
		Input:     input,
		ExamBoard: s.split.ExamBoard,
		OutputDir: s.split.OutputDir,
		PageCount: len(pages),
		Pages:     outcomes,
	}

	// Output files are named in page order so duplicate UCIs get
	// deterministic suffixes instead of overwriting each other.
	taken := make(map[string]int)
	for i := range report.Pages {
		outcome := &report.Pages[i]
		if outcome.UCI == "" {
			outcome.Skipped = true
			report.Skipped++
			s.log.Warn("No valid UCI found on page %d (%d candidates), skipping", outcome.PageNumber, outcome.Candidates)
			continue
		}

		name := outputName(outcome.UCI, s.split.ExamBoard, taken)
		path := filepath.Join(s.split.OutputDir, name)
		if err := os.WriteFile(path, pages[i], 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		outcome.OutputFile = name
		report.Extracted++
		s.log.Info("%s extracted - page %d", outcome.UCI, outcome.PageNumber)
	}

	if s.store != nil {
		if err := s.store.RecordRun(ctx, report); err != nil {
			s.log.Error("Failed to record run in ledger: %v", err)
		}
	}

	return report, nil
}

// resolvePage finds the page's UCI, trying the embedded text layer first and
// falling back to OCR.
func (s *Splitter) resolvePage(ctx context.Context, idx int, page models.PdfPageData) models.PageOutcome {
	outcome := models.PageOutcome{
		PageNumber: idx + 1,
		Source:     models.SourceNone,
	}

	text, err := pdf.ExtractPageText(page)
	if err != nil {
		s.log.Debug("Text layer extraction failed for page %d: %v", idx+1, err)
	}
	if text != "" {
		outcome.Candidates = len(uci.Scan(text))
		if id, ok := uci.Resolve(text); ok {
			outcome.UCI = id
			outcome.Source = models.SourceText
			return outcome
		}
	}

	if s.engine == nil {
		return outcome
	}

	s.log.Debug("Running %s OCR on page %d", s.engine.Name(), idx+1)
	result, err := s.engine.Recognize(ctx, ocr.Input{
		Page:      idx,
		PagePDF:   page,
		DPI:       s.ocrCfg.DPI,
		Languages: s.ocrCfg.Languages,
	})
	if err != nil {
		s.log.Error("OCR failed for page %d: %v", idx+1, err)
		return outcome
	}

	outcome.Candidates += len(uci.Scan(result.PlainText))
	if id, ok := uci.Resolve(result.PlainText); ok {
		outcome.UCI = id
		outcome.Source = models.SourceOCR
	}
	return outcome
}

// outputName builds {UCI}_{examBoard}.pdf, suffixing repeats so a UCI that
// appears on several pages never overwrites an earlier page's output.
func outputName(id, examBoard string, taken map[string]int) string {
	base := fmt.Sprintf("%s_%s", id, examBoard)
	taken[base]++
	if n := taken[base]; n > 1 {
		return fmt.Sprintf("%s_%d.pdf", base, n)
	}
	return base + ".pdf"
}

func (s *Splitter) engineName() string {
	if s.engine == nil {
		return "none"
	}
	return s.engine.Name()
}
