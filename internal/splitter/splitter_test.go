package splitter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/ocr"
	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// fakeEngine returns canned text per page index, standing in for Tesseract.
type fakeEngine struct {
	pages map[int]string
	err   error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{PlainText: f.pages[in.Page]}, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Split: config.SplitConfig{
			OutputDir: t.TempDir(),
			ExamBoard: "OCR",
			Workers:   2,
		},
		OCR: config.OCRConfig{Engine: config.EngineTesseract, DPI: 300},
	}
}

func TestOutputName(t *testing.T) {
	taken := make(map[string]int)

	if got := outputName("12345A678901H", "OCR", taken); got != "12345A678901H_OCR.pdf" {
		t.Errorf("first name = %q", got)
	}
	if got := outputName("12345A678901H", "OCR", taken); got != "12345A678901H_OCR_2.pdf" {
		t.Errorf("second name = %q", got)
	}
	if got := outputName("12345A678901H", "OCR", taken); got != "12345A678901H_OCR_3.pdf" {
		t.Errorf("third name = %q", got)
	}
	if got := outputName("54321Z987654Y", "AQA", taken); got != "54321Z987654Y_AQA.pdf" {
		t.Errorf("other uci = %q", got)
	}
}

func TestResolvePage_OCRFallback(t *testing.T) {
	cfg := testConfig(t)
	engine := &fakeEngine{pages: map[int]string{
		0: "Candidate 12345A678901H Statement of Marks",
	}}
	s := New(cfg, engine, nil, logger.NewNoOpLogger())

	// Garbage bytes have no text layer, so the fake OCR result decides.
	outcome := s.resolvePage(context.Background(), 0, models.PdfPageData("not a pdf"))

	if outcome.UCI != "12345A678901H" {
		t.Errorf("uci = %q, want %q", outcome.UCI, "12345A678901H")
	}
	if outcome.Source != models.SourceOCR {
		t.Errorf("source = %q, want %q", outcome.Source, models.SourceOCR)
	}
	if outcome.PageNumber != 1 {
		t.Errorf("page number = %d, want 1", outcome.PageNumber)
	}
}

func TestResolvePage_NoValidUCI(t *testing.T) {
	cfg := testConfig(t)
	engine := &fakeEngine{pages: map[int]string{
		0: "candidates 12345A678901B and 12345A678901C, neither valid",
	}}
	s := New(cfg, engine, nil, logger.NewNoOpLogger())

	outcome := s.resolvePage(context.Background(), 0, models.PdfPageData("not a pdf"))

	if outcome.UCI != "" {
		t.Errorf("uci = %q, want empty", outcome.UCI)
	}
	if outcome.Source != models.SourceNone {
		t.Errorf("source = %q, want %q", outcome.Source, models.SourceNone)
	}
	if outcome.Candidates != 2 {
		t.Errorf("candidates = %d, want 2", outcome.Candidates)
	}
}

func TestResolvePage_EngineError(t *testing.T) {
	cfg := testConfig(t)
	engine := &fakeEngine{err: errors.New("tesseract not installed")}
	s := New(cfg, engine, nil, logger.NewNoOpLogger())

	outcome := s.resolvePage(context.Background(), 0, models.PdfPageData("not a pdf"))

	// OCR failure degrades to a skipped page, never an error.
	if outcome.UCI != "" || outcome.Source != models.SourceNone {
		t.Errorf("outcome = %+v, want empty", outcome)
	}
}

func TestResolvePage_NilEngine(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil, nil, logger.NewNoOpLogger())

	outcome := s.resolvePage(context.Background(), 2, models.PdfPageData("not a pdf"))

	if outcome.UCI != "" || outcome.Source != models.SourceNone {
		t.Errorf("outcome = %+v, want empty", outcome)
	}
	if outcome.PageNumber != 3 {
		t.Errorf("page number = %d, want 3", outcome.PageNumber)
	}
}

func TestSplit_SampleStatements(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.pdf"))
	if err != nil || len(files) == 0 {
		t.Skip("No sample PDFs found in testdata directory")
	}

	cfg := testConfig(t)
	s := New(cfg, nil, nil, logger.NewNoOpLogger())

	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}

	report, err := s.Split(context.Background(), data, filepath.Base(files[0]))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if report.PageCount == 0 {
		t.Error("report has zero pages")
	}
	if report.Extracted+report.Skipped != report.PageCount {
		t.Errorf("extracted %d + skipped %d != pages %d", report.Extracted, report.Skipped, report.PageCount)
	}
	for _, page := range report.Pages {
		if page.OutputFile == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(cfg.Split.OutputDir, page.OutputFile)); err != nil {
			t.Errorf("missing output file %s: %v", page.OutputFile, err)
		}
	}
}

func TestParallelProcess(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	results, err := parallelProcess(context.Background(), items, 2,
		func(ctx context.Context, idx int, item int) (int, error) {
			return item * 2, nil
		})
	if err != nil {
		t.Fatalf("parallelProcess failed: %v", err)
	}
	for i, item := range items {
		if results[i] != item*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], item*2)
		}
	}
}

func TestParallelProcess_Error(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := parallelProcess(context.Background(), []int{1, 2, 3}, 2,
		func(ctx context.Context, idx int, item int) (int, error) {
			if item == 2 {
				return 0, wantErr
			}
			return item, nil
		})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestParallelProcess_Empty(t *testing.T) {
	results, err := parallelProcess(context.Background(), nil, 2,
		func(ctx context.Context, idx int, item int) (int, error) {
			return item, nil
		})
	if err != nil {
		t.Fatalf("parallelProcess failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
