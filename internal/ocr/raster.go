package ocr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// DefaultDPI matches the rendering resolution the splitter was tuned on.
// Lower values noticeably hurt Tesseract's hit rate on statement scans.
const DefaultDPI = 300

// RenderPNG rasterizes the first page of a single-page PDF to a PNG at the
// given DPI using MuPDF.
func RenderPNG(page models.PdfPageData, dpi int) ([]byte, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	doc, err := fitz.NewFromMemory(page)
	if err != nil {
		return nil, fmt.Errorf("failed to open page PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("page PDF contains no pages")
	}

	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
