package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/storage"
	"github.com/nelsonfernandesserrao/UCI-PDF/resources"
	"github.com/nelsonfernandesserrao/UCI-PDF/tools"
)

func CreateServer(cfg *config.Config, log logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "ucisplit", Version: "v0.1.0"}, nil)

	store, err := initializeStorage(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}

	runResourceHandler := resources.NewRunResourceHandler(store)

	// Register tools with configuration, storage, and logger dependencies
	mcp.AddTool(server, tools.ResolveUCITool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ResolveUCIQuery) (*mcp.CallToolResult, *tools.ResolveUCIResponse, error) {
		return tools.ResolveUCIToolHandler(ctx, req, query)
	})

	mcp.AddTool(server, tools.ValidateUCITool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ValidateUCIQuery) (*mcp.CallToolResult, *tools.ValidateUCIResponse, error) {
		return tools.ValidateUCIToolHandler(ctx, req, query)
	})

	mcp.AddTool(server, tools.SplitPDFTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SplitPDFQuery) (*mcp.CallToolResult, *tools.SplitPDFResponse, error) {
		return tools.SplitPDFToolHandler(ctx, req, query, cfg, store, log)
	})

	// Template for run summary
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "run://{runId}",
		Name:        "split-run",
		Description: "Summary of a recorded split run: input, page counts, extraction totals",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for per-page outcomes
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "run://{runId}/pages",
		Name:        "split-run-pages",
		Description: "Per-page outcomes of a split run: recognized UCI, output file, recognition source",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	return server
}

// initializeStorage creates and initializes the run ledger
func initializeStorage(cfg *config.Config, log logger.Logger) (storage.Store, error) {
	dbPath := cfg.App.DBPath
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	log.Info("Initializing SQLite ledger at: %s", dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite store: %w", err)
	}

	return store, nil
}
