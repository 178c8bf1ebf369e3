package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// OCREngine selects the recognition backend used for scanned pages.
type OCREngine string

const (
	EngineTesseract OCREngine = "tesseract"
	EngineOpenAI    OCREngine = "openai"
	EngineNone      OCREngine = "none"
)

// SplitConfig controls how a source document is split into per-candidate files.
type SplitConfig struct {
	// InputPath is a local PDF path. InputURL is used instead when set.
	InputPath string
	InputURL  string
	OutputDir string
	// ExamBoard is appended to each output filename: {UCI}_{ExamBoard}.pdf.
	ExamBoard string
	// PageLimit stops processing after this many pages; 0 means all pages.
	PageLimit int
	// Workers bounds concurrent page processing.
	Workers int
}

// OCRConfig holds recognition settings shared by all engines.
type OCRConfig struct {
	Engine    OCREngine
	Languages []string
	DPI       int
	// OpenAIAPIKey is required only when Engine is "openai".
	OpenAIAPIKey string
}

// AppConfig holds process-level settings.
type AppConfig struct {
	LogLevel  string
	LogOutput string
	DBPath    string
}

type Config struct {
	App   AppConfig
	Split SplitConfig
	OCR   OCRConfig
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := getEnv("UCISPLIT_DB_PATH", "")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		dbPath = filepath.Join(homeDir, ".ucisplit", "ucisplit.db")
	}

	return &Config{
		App: AppConfig{
			LogLevel:  getEnv("UCISPLIT_LOG_LEVEL", "info"),
			LogOutput: getEnv("UCISPLIT_LOG_OUTPUT", ""),
			DBPath:    dbPath,
		},
		Split: SplitConfig{
			InputPath: getEnv("UCISPLIT_INPUT", ""),
			InputURL:  getEnv("UCISPLIT_INPUT_URL", ""),
			OutputDir: getEnv("UCISPLIT_OUTPUT_DIR", "output_pdfs"),
			ExamBoard: getEnv("UCISPLIT_EXAM_BOARD", "OCR"),
			PageLimit: getEnvInt("UCISPLIT_PAGE_LIMIT", 0),
			Workers:   getEnvInt("UCISPLIT_WORKERS", defaultWorkerCount()),
		},
		OCR: OCRConfig{
			Engine:       parseEngine(getEnv("UCISPLIT_OCR_ENGINE", string(EngineTesseract))),
			Languages:    splitList(getEnv("UCISPLIT_OCR_LANGUAGES", "eng")),
			DPI:          getEnvInt("UCISPLIT_OCR_DPI", 300),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		},
	}, nil
}

// Validate checks that the configuration is complete enough to run a split.
func (c *Config) Validate() error {
	if c.Split.InputPath == "" && c.Split.InputURL == "" {
		return fmt.Errorf("UCISPLIT_INPUT or UCISPLIT_INPUT_URL is required")
	}
	if c.Split.ExamBoard == "" {
		return fmt.Errorf("UCISPLIT_EXAM_BOARD must not be empty")
	}
	if c.OCR.Engine == EngineOpenAI && c.OCR.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when the openai OCR engine is selected")
	}
	if c.OCR.DPI <= 0 {
		return fmt.Errorf("UCISPLIT_OCR_DPI must be positive")
	}
	return nil
}

func parseEngine(name string) OCREngine {
	switch OCREngine(strings.ToLower(name)) {
	case EngineTesseract, EngineOpenAI, EngineNone:
		return OCREngine(strings.ToLower(name))
	default:
		return EngineTesseract
	}
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// defaultWorkerCount caps page concurrency at the CPU count. OCR is CPU-bound
// so more workers than cores only adds contention.
func defaultWorkerCount() int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
