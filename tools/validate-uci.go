package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/uci"
)

type ValidateUCIQuery struct {
	UCI string `json:"uci"`
}

type ValidateUCIResponse struct {
	Valid bool `json:"valid"`
	// ExpectedCheckCharacter is filled when the first 12 characters are
	// well-formed, so callers can see what the check character should be.
	ExpectedCheckCharacter string `json:"expected_check_character,omitempty"`
}

func ValidateUCITool() *mcp.Tool {
	inputschema, err := jsonschema.For[ValidateUCIQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "validate-uci",
		Description: "Check whether a 13-character string is a valid Unique Candidate Identifier under the weighted mod-17 checksum scheme",
		InputSchema: inputschema,
	}
}

func ValidateUCIToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ValidateUCIQuery) (*mcp.CallToolResult, *ValidateUCIResponse, error) {
	response := &ValidateUCIResponse{Valid: uci.Validate(query.UCI)}

	if len(query.UCI) == uci.Length {
		if expected, ok := uci.CheckCharacter(query.UCI[:uci.Length-1]); ok {
			response.ExpectedCheckCharacter = string(expected)
		}
	}

	var message string
	switch {
	case response.Valid:
		message = fmt.Sprintf("%s is a valid UCI.", query.UCI)
	case response.ExpectedCheckCharacter != "":
		message = fmt.Sprintf("%s is not a valid UCI; the check character should be %s.", query.UCI, response.ExpectedCheckCharacter)
	default:
		message = fmt.Sprintf("%s is not a valid UCI; it does not match the required shape.", query.UCI)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}

	return result, response, nil
}
