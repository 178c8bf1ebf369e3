package ocr

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/nelsonfernandesserrao/UCI-PDF/internal/logger"
)

// OpenAIEngine implements Engine using OpenAI's vision capabilities. It is a
// remote alternative to Tesseract for scans too degraded for local OCR.
type OpenAIEngine struct {
	apiKey string
	log    logger.Logger
}

// NewOpenAIEngine constructs an OpenAI-backed OCR engine.
func NewOpenAIEngine(apiKey string, log logger.Logger) *OpenAIEngine {
	return &OpenAIEngine{apiKey: apiKey, log: log}
}

func (e *OpenAIEngine) Name() string { return "openai" }

// Recognize sends the single-page PDF to the Responses API and asks for a
// verbatim transcription. Calls share a token-bucket rate limit and retry on
// 429 responses.
func (e *OpenAIEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	text, err := RateLimitedCall(ctx, estimatedTokensPerPage, e.log, func(ctx context.Context) (string, error) {
		return e.transcribePage(ctx, in)
	})
	if err != nil {
		return Result{}, err
	}
	return Result{PlainText: strings.TrimSpace(text)}, nil
}

func (e *OpenAIEngine) transcribePage(ctx context.Context, in Input) (string, error) {
	client := openai.NewClient(option.WithAPIKey(e.apiKey))
	encodedPageData := base64.StdEncoding.EncodeToString(in.PagePDF)
	response, err := client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ChatModelGPT5Mini,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						responses.ResponseInputContentUnionParam{
							OfInputFile: &responses.ResponseInputFileParam{
								FileData: openai.String("data:application/pdf;base64," + encodedPageData),
								Filename: openai.String("page.pdf"),
							},
						},
						responses.ResponseInputContentParamOfInputText(`Transcribe all text on this scanned exam results page, verbatim.

- Output plain text only, no commentary and no markdown.
- Preserve line breaks between distinct lines on the page.
- Transcribe identifiers, reference numbers, and codes exactly as printed, character by character. Do not correct what looks like a typo.
- If part of the page is illegible, transcribe what is legible and skip the rest.`),
					},
					"user",
				),
			},
		},
	},
	)
	if err != nil {
		return "", err
	}
	return response.OutputText(), nil
}
