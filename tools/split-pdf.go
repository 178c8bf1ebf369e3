package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/ocr"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/pdf"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/splitter"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/storage"
	"github.com/nelsonfernandesserrao/UCI-PDF/models"
)

type SplitPDFQuery struct {
	Path       string `json:"path,omitempty"`
	URL        string `json:"url,omitempty"`
	ExamBoard  string `json:"exam_board,omitempty"`
	OutputDir  string `json:"output_dir,omitempty"`
	DisableOCR bool   `json:"disable_ocr,omitempty"`
}

type SplitPDFResponse struct {
	Report       *models.RunReport `json:"report"`
	ResourcePath string            `json:"resource_path,omitempty"`
}

func SplitPDFTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SplitPDFQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "split-pdf",
		Description: "Split a scanned exam results PDF into one file per page, each named by the Unique Candidate Identifier recognized on that page; pages without a valid UCI are skipped",
		InputSchema: inputschema,
	}
}

func SplitPDFToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SplitPDFQuery, cfg *config.Config, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *SplitPDFResponse, error) {
	source := models.SourceInfo{Path: query.Path, URL: query.URL}
	data, err := pdf.GetData(ctx, source)
	if err != nil {
		return nil, nil, err
	}

	// Per-call overrides on top of the server configuration.
	runCfg := *cfg
	if query.ExamBoard != "" {
		runCfg.Split.ExamBoard = query.ExamBoard
	}
	if query.OutputDir != "" {
		runCfg.Split.OutputDir = query.OutputDir
	}

	var engine ocr.Engine
	if !query.DisableOCR {
		engine, err = ocr.NewEngine(runCfg.OCR, log)
		if err != nil {
			return nil, nil, err
		}
	}

	input := query.Path
	if input == "" {
		input = query.URL
	}

	s := splitter.New(&runCfg, engine, store, log)
	report, err := s.Split(ctx, data, filepath.Base(input))
	if err != nil {
		return nil, nil, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Split %s: %d pages, %d extracted, %d skipped. Output in %s.",
					report.Input, report.PageCount, report.Extracted, report.Skipped, report.OutputDir),
			},
		},
	}

	return result, &SplitPDFResponse{
		Report:       report,
		ResourcePath: "run://" + report.RunID,
	}, nil
}
