package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/contract"
	"github.com/chargeboard/rosterscan/internal/ocr"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// rosterparse: one-shot sheet -> roster JSON on stdout. No database.
func main() {
	var (
		file       = flag.String("file", "", "sheet to parse: pdf, image, or txt (required)")
		pretty     = flag.Bool("pretty", false, "indent the JSON output")
		lineTol    = flag.Float64("line-tol", 0, "override line y-tolerance in px")
		pcaFrac    = flag.Float64("pca-frac", 0, "override PCA region max y as fraction of height")
		maxAnchors = flag.Int("max-anchors", 0, "override max RN anchors")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "error: --file is required")
		flag.Usage()
		os.Exit(2)
	}

	common.LoadDotenv(logger)
	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		HeicConverter: cfg.OCR.HeicConverter,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	res, err := extractor.Extract(ctx, *file)
	if err != nil {
		logger.Error("extraction failed", "file", *file, "error", err)
		os.Exit(1)
	}

	parser := roster.NewParser(roster.LayoutConfig{
		LineYTolerance: *lineTol,
		PCATopFraction: *pcaFrac,
		MaxAnchors:     *maxAnchors,
	})

	var parsed roster.ParsedRoster
	if len(res.Doc.Words) > 0 {
		parsed = parser.ParseDocument(res.Doc)
	} else {
		parsed = parser.ParseText(res.Doc.Text)
	}

	payload, err := contract.ValidateRoster(parsed, parser.Config().RoomPattern.String())
	if err != nil {
		logger.Error("roster contract violation", "error", err)
		os.Exit(1)
	}

	logger.Info("parsed",
		"method", res.Method, "pages", res.Pages, "confidence", res.Confidence,
		"outcome", parsed.Outcome, "rns", len(parsed.RNs), "pcas", len(parsed.PCAs))

	if *pretty {
		var buf map[string]any
		if err := json.Unmarshal(payload, &buf); err == nil {
			if b, err := json.MarshalIndent(buf, "", "  "); err == nil {
				payload = b
			}
		}
	}
	fmt.Println(string(payload))
}
