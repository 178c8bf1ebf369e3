package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/config"
	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
	"github.com/nelsonfernandesserrao/UCI-PDF/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(logger.LogConfig{
		Level:  cfg.App.LogLevel,
		Output: cfg.App.LogOutput,
	})
	if err != nil {
		// Fall back to panic if logger initialization fails
		panic(err)
	}

	log.Info("Starting ucisplit MCP server")

	srv := server.CreateServer(cfg, log)
	err = srv.Run(context.Background(), &mcp.StdioTransport{})
	if err != nil {
		log.Fatal("Server failed: %v", err)
	}
}
