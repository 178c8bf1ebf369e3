package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/storage"
)

// RunResourceHandler handles resource requests for recorded split runs
type RunResourceHandler struct {
	store storage.Store
}

// NewRunResourceHandler creates a new run resource handler
func NewRunResourceHandler(store storage.Store) *RunResourceHandler {
	return &RunResourceHandler{store: store}
}

// ListResources returns a list of available resources
func (h *RunResourceHandler) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	runs, err := h.store.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	var resources []mcp.Resource
	for _, run := range runs {
		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("run://%s", run.RunID),
			Name:        fmt.Sprintf("%s (Run)", run.Input),
			Description: fmt.Sprintf("Split run for %s: %d pages, %d extracted", run.Input, run.PageCount, run.Extracted),
			MIMEType:    "application/json",
		})
		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("run://%s/pages", run.RunID),
			Name:        fmt.Sprintf("%s (Pages)", run.Input),
			Description: "Per-page outcomes: recognized UCI, output file, and recognition source",
			MIMEType:    "application/json",
		})
	}

	return resources, nil
}

// ReadResource reads a specific resource by URI
func (h *RunResourceHandler) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	// Parse URI: run://run_id/optional_resource_type
	if !strings.HasPrefix(uri, "run://") {
		return nil, fmt.Errorf("invalid URI scheme, expected run://")
	}

	path := strings.TrimPrefix(uri, "run://")
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("invalid URI, missing run ID")
	}

	runID := parts[0]
	resourceType := ""
	if len(parts) > 1 {
		resourceType = parts[1]
	}

	var content string
	var err error

	switch resourceType {
	case "":
		content, err = h.getRunSummary(ctx, runID)
	case "pages":
		content, err = h.getRunPages(ctx, runID)
	default:
		return nil, fmt.Errorf("unknown resource type: %s", resourceType)
	}

	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     content,
			},
		},
	}, nil
}

func (h *RunResourceHandler) getRunSummary(ctx context.Context, runID string) (string, error) {
	run, err := h.store.GetRun(ctx, runID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run: %w", err)
	}
	return string(data), nil
}

func (h *RunResourceHandler) getRunPages(ctx context.Context, runID string) (string, error) {
	pages, err := h.store.GetRunPages(ctx, runID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal pages: %w", err)
	}
	return string(data), nil
}
