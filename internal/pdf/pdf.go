package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

// SplitPdf splits a PDF document into one single-page PDF per source page.
func SplitPdf(pdf models.PdfData) (models.PdfPages, error) {
	var pages models.PdfPages
	reader := bytes.NewReader(pdf)
	conf := model.NewDefaultConfiguration()
	pdfContext, err := api.ReadValidateAndOptimize(reader, conf)
	if err != nil {
		return pages, err
	}
	pageCount := pdfContext.PageCount
	if pageCount == 0 {
		return pages, nil
	}
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pageReader, err := api.ExtractPage(pdfContext, pageNum)
		if err != nil {
			return pages, err
		}
		pageData, err := io.ReadAll(pageReader)
		if err != nil {
			return pages, err
		}
		pages = append(pages, models.PdfPageData(pageData))
	}
	return pages, nil
}

// PageCount returns the number of pages in a PDF document.
func PageCount(pdf models.PdfData) (int, error) {
	return api.PageCount(bytes.NewReader(pdf), nil)
}

// GetData loads the source PDF from a local path or an HTTP URL.
func GetData(ctx context.Context, sourceInfo models.SourceInfo) (models.PdfData, error) {
	var data models.PdfData
	var err error
	if sourceInfo.Path != "" {
		data, err = os.ReadFile(sourceInfo.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input PDF: %w", err)
		}
	} else if sourceInfo.URL != "" {
		data, err = GetFromURL(ctx, sourceInfo.URL)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, errors.New("no data provided")
	}

	if len(data) == 0 {
		return nil, errors.New("no data retrieved")
	}

	return data, nil
}

// GetFromURL downloads a PDF over HTTP.
func GetFromURL(ctx context.Context, url string) (models.PdfData, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}
	return io.ReadAll(resp.Body)
}
