package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/uci"
)

type ResolveUCIQuery struct {
	Text string `json:"text"`
}

type ResolveUCIResponse struct {
	UCI        string   `json:"uci,omitempty"`
	Found      bool     `json:"found"`
	Candidates []string `json:"candidates,omitempty"`
}

func ResolveUCITool() *mcp.Tool {
	inputschema, err := jsonschema.For[ResolveUCIQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "resolve-uci",
		Description: "Scan a block of text (e.g. OCR output from a results page) for 13-character candidate tokens and return the first one that validates as a Unique Candidate Identifier",
		InputSchema: inputschema,
	}
}

func ResolveUCIToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ResolveUCIQuery) (*mcp.CallToolResult, *ResolveUCIResponse, error) {
	candidates := uci.Scan(query.Text)
	id, found := uci.Resolve(query.Text)

	var message string
	if found {
		message = fmt.Sprintf("Found valid UCI %s (%d candidate tokens scanned).", id, len(candidates))
	} else {
		message = fmt.Sprintf("No valid UCI found (%d candidate tokens scanned).", len(candidates))
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}

	return result, &ResolveUCIResponse{
		UCI:        id,
		Found:      found,
		Candidates: candidates,
	}, nil
}
