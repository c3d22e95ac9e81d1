package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/roster"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir   string
	HeicConverter string

	PSM int // 6 works well for the tabular grid of a shift sheet
	OEM int // 1 = LSTM; leave 0 to use default

	// MinTextChars is the embedded-text threshold below which a PDF is
	// treated as a scan and rasterized for OCR. Default 40.
	MinTextChars int
}

// ExtractionResult carries the positioned document plus provenance for the
// parse job record.
type ExtractionResult struct {
	Doc        roster.Document
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE | constants.TXT
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr" | "plain-text"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinTextChars <= 0 {
		cfg.MinTextChars = 40
	}
	return &Extractor{cfg: cfg, runner: newExecRunner(logger), logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting extraction", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		var cleanup func()
		var warns []string
		if constants.IsHEICExt(ext) {
			out, w, c, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
			warns = append(warns, w...)
			if c != nil {
				cleanup = c
			}
			if err != nil {
				if cleanup != nil {
					cleanup()
				}
				e.logger.Error("heic conversion failed", "path", path, "error", err)
				return ExtractionResult{SourceType: constants.IMAGE, Warnings: warns}, err
			}
			path = out
		}
		if cleanup != nil {
			defer cleanup()
		}
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		res.Warnings = append(res.Warnings, warns...)
		return res, err
	case constants.TXT:
		res, err := e.extractText(path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

// extractText reads a pre-extracted text dump. No geometry: the parser will
// run its text-only path.
func (e *Extractor) extractText(path string) (ExtractionResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.TXT}, err
	}
	txt := Normalize(string(raw))
	return ExtractionResult{
		Doc:        roster.Document{Text: txt},
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "plain-text",
		Language:   e.cfg.TesseractLang,
		Confidence: heuristicConfidence(txt),
	}, nil
}
