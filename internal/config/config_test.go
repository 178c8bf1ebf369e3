package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Split.OutputDir != "output_pdfs" {
		t.Errorf("default output dir = %q, want %q", cfg.Split.OutputDir, "output_pdfs")
	}
	if cfg.Split.ExamBoard != "OCR" {
		t.Errorf("default exam board = %q, want %q", cfg.Split.ExamBoard, "OCR")
	}
	if cfg.OCR.Engine != EngineTesseract {
		t.Errorf("default engine = %q, want %q", cfg.OCR.Engine, EngineTesseract)
	}
	if cfg.OCR.DPI != 300 {
		t.Errorf("default DPI = %d, want 300", cfg.OCR.DPI)
	}
	if cfg.Split.Workers < 1 {
		t.Errorf("default workers = %d, want >= 1", cfg.Split.Workers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("UCISPLIT_INPUT", "statement.pdf")
	t.Setenv("UCISPLIT_EXAM_BOARD", "AQA")
	t.Setenv("UCISPLIT_OCR_ENGINE", "openai")
	t.Setenv("UCISPLIT_OCR_LANGUAGES", "eng, deu")
	t.Setenv("UCISPLIT_OCR_DPI", "150")
	t.Setenv("UCISPLIT_PAGE_LIMIT", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Split.InputPath != "statement.pdf" {
		t.Errorf("input path = %q, want %q", cfg.Split.InputPath, "statement.pdf")
	}
	if cfg.Split.ExamBoard != "AQA" {
		t.Errorf("exam board = %q, want %q", cfg.Split.ExamBoard, "AQA")
	}
	if cfg.OCR.Engine != EngineOpenAI {
		t.Errorf("engine = %q, want %q", cfg.OCR.Engine, EngineOpenAI)
	}
	if want := []string{"eng", "deu"}; !reflect.DeepEqual(cfg.OCR.Languages, want) {
		t.Errorf("languages = %v, want %v", cfg.OCR.Languages, want)
	}
	if cfg.OCR.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.OCR.DPI)
	}
	if cfg.Split.PageLimit != 6 {
		t.Errorf("page limit = %d, want 6", cfg.Split.PageLimit)
	}
}

func TestParseEngineFallback(t *testing.T) {
	if got := parseEngine("gibberish"); got != EngineTesseract {
		t.Errorf("parseEngine(gibberish) = %q, want %q", got, EngineTesseract)
	}
	if got := parseEngine("OpenAI"); got != EngineOpenAI {
		t.Errorf("parseEngine(OpenAI) = %q, want %q", got, EngineOpenAI)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "input path set",
			mutate: func(c *Config) { c.Split.InputPath = "in.pdf" },
		},
		{
			name:   "input url set",
			mutate: func(c *Config) { c.Split.InputURL = "https://example.com/in.pdf" },
		},
		{
			name:    "no input",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "empty exam board",
			mutate: func(c *Config) {
				c.Split.InputPath = "in.pdf"
				c.Split.ExamBoard = ""
			},
			wantErr: true,
		},
		{
			name: "openai engine without key",
			mutate: func(c *Config) {
				c.Split.InputPath = "in.pdf"
				c.OCR.Engine = EngineOpenAI
				c.OCR.OpenAIAPIKey = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Split: SplitConfig{ExamBoard: "OCR"},
				OCR:   OCRConfig{Engine: EngineTesseract, DPI: 300},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
