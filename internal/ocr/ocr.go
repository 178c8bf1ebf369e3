// Package ocr turns single-page PDFs into plain text so the UCI resolver can
// run over scanned statements that carry no embedded text layer.
package ocr

import (
	"context"
	"fmt"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// Input is a single page submitted for recognition.
type Input struct {
	// Page is the zero-based index of the page in the source document, used
	// only for diagnostics.
	Page int
	// PagePDF holds the single-page PDF to recognize. Engines that work on
	// raster images render it themselves at DPI.
	PagePDF models.PdfPageData
	// DPI controls rasterization; zero falls back to 300.
	DPI int
	// Languages is a list of Tesseract language codes (e.g. "eng").
	Languages []string
}

// Result carries the recognized text for one input page.
type Result struct {
	PlainText string
}

// Engine is the recognition contract: one page in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// NewEngine builds the engine selected by the configuration. The "none"
// engine disables OCR so only embedded text layers are used.
func NewEngine(cfg config.OCRConfig, log logger.Logger) (Engine, error) {
	switch cfg.Engine {
	case config.EngineTesseract:
		return NewTesseractEngine(), nil
	case config.EngineOpenAI:
		return NewOpenAIEngine(cfg.OpenAIAPIKey, log), nil
	case config.EngineNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown OCR engine: %s", cfg.Engine)
	}
}
