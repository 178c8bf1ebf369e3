package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

func TestSplitPdf(t *testing.T) {
	// Sample statements are not checked in; drop PDFs into testdata to run.
	files, err := filepath.Glob(filepath.Join("testdata", "*.pdf"))
	if err != nil {
		t.Fatalf("Failed to list sample PDFs: %v", err)
	}

	if len(files) == 0 {
		t.Skip("No sample PDFs found in testdata directory")
	}

	for _, filePath := range files {
		t.Run(filepath.Base(filePath), func(t *testing.T) {
			pdfBytes, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatalf("Failed to read PDF file %s: %v", filePath, err)
			}

			reader := bytes.NewReader(pdfBytes)
			expectedPageCount, err := api.PageCount(reader, nil)
			if err != nil {
				t.Fatalf("Failed to get page count: %v", err)
			}

			pages, err := SplitPdf(models.PdfData(pdfBytes))
			if err != nil {
				t.Fatalf("SplitPdf failed: %v", err)
			}

			if len(pages) != expectedPageCount {
				t.Errorf("Expected %d pages, got %d", expectedPageCount, len(pages))
			}

			for i, pageData := range pages {
				if len(pageData) == 0 {
					t.Errorf("Page %d is empty", i+1)
					continue
				}
				pageCount, err := api.PageCount(bytes.NewReader(pageData), nil)
				if err != nil {
					t.Errorf("Page %d is not a readable PDF: %v", i+1, err)
					continue
				}
				if pageCount != 1 {
					t.Errorf("Page %d has %d pages, want 1", i+1, pageCount)
				}
			}
		})
	}
}

func TestGetDataNoSource(t *testing.T) {
	if _, err := GetData(context.Background(), models.SourceInfo{}); err == nil {
		t.Error("GetData with empty source should fail")
	}
}

func TestGetDataFromFile(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.pdf"))
	if err != nil || len(files) == 0 {
		t.Skip("No sample PDFs found in testdata directory")
	}

	data, err := GetData(context.Background(), models.SourceInfo{Path: files[0]})
	if err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("GetData returned empty data")
	}
}
