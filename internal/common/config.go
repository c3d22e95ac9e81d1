package common

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	OCR      OCRConfig
	Parser   ParserConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// OCRConfig holds extraction-related configuration
type OCRConfig struct {
	TesseractLang string
	TessdataDir   string
	HeicConverter string
	DPI           int
	MaxPages      int
	PSM           int
	OEM           int
}

// ParserConfig holds layout prior overrides. Zero values keep the parser
// defaults, so only the tuned fields need to appear in the environment.
type ParserConfig struct {
	LineYTolerance float64
	PCATopFraction float64
	MaxAnchors     int
}

// PipelineConfig holds thresholds for the parse stage
type PipelineConfig struct {
	MinRoomsForReview int
	MinConfidence     float32
}

// LoadDotenv loads a .env file when present; a missing file is not an error.
func LoadDotenv(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to load .env", "error", err)
		}
		return
	}
	logger.Debug("loaded .env")
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		OCR: OCRConfig{
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			HeicConverter: getEnv("HEIC_CONVERTER", "magick"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			PSM:           getEnvAsInt("OCR_PSM", 6),
			OEM:           getEnvAsInt("OCR_OEM", 0),
		},
		Parser: ParserConfig{
			LineYTolerance: getEnvAsFloat64("PARSER_LINE_Y_TOL_PX", 0),
			PCATopFraction: getEnvAsFloat64("PARSER_PCA_TOP_FRACTION", 0),
			MaxAnchors:     getEnvAsInt("PARSER_MAX_ANCHORS", 0),
		},
		Pipeline: PipelineConfig{
			MinRoomsForReview: getEnvAsInt("PIPELINE_MIN_ROOMS_FOR_REVIEW", 4),
			MinConfidence:     getEnvAsFloat32("PIPELINE_MIN_CONFIDENCE", 0.60),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	return nil
}
