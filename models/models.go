package models

type PdfData []byte
type PdfPageData []byte
type PdfPages []PdfPageData

// SourceInfo describes where the input PDF comes from. Exactly one of Path or
// URL should be set.
type SourceInfo struct {
	Path string `json:"path,omitempty"`
	URL  string `json:"url,omitempty"`
}

// RecognitionSource records which extraction path produced the text a UCI was
// resolved from.
type RecognitionSource string

const (
	SourceText RecognitionSource = "text"
	SourceOCR  RecognitionSource = "ocr"
	SourceNone RecognitionSource = "none"
)

// PageOutcome is the per-page result of a split run.
type PageOutcome struct {
	PageNumber int               `json:"page_number"`
	UCI        string            `json:"uci,omitempty"`
	OutputFile string            `json:"output_file,omitempty"`
	Source     RecognitionSource `json:"source"`
	Candidates int               `json:"candidates"`
	Skipped    bool              `json:"skipped"`
}

// RunReport summarizes a complete split run.
type RunReport struct {
	RunID     string        `json:"run_id"`
	Input     string        `json:"input"`
	ExamBoard string        `json:"exam_board"`
	OutputDir string        `json:"output_dir"`
	PageCount int           `json:"page_count"`
	Extracted int           `json:"extracted"`
	Skipped   int           `json:"skipped"`
	Pages     []PageOutcome `json:"pages"`
}

// RunInfo is the ledger-level view of a stored run.
type RunInfo struct {
	RunID     string `json:"run_id"`
	Input     string `json:"input"`
	ExamBoard string `json:"exam_board"`
	OutputDir string `json:"output_dir"`
	PageCount int    `json:"page_count"`
	Extracted int    `json:"extracted"`
	Skipped   int    `json:"skipped"`
	CreatedAt string `json:"created_at,omitempty"`
}
