package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/async"
	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/ocr"
	processor "github.com/chargeboard/rosterscan/internal/pipeline"
	repo "github.com/chargeboard/rosterscan/internal/repository"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// roster-batch: walk a directory of shift sheets, run the full pipeline
// against postgres, and print a summary.
func main() {
	var (
		dir     = flag.String("dir", "", "directory of sheets to process (required)")
		migrate = flag.Bool("migrate", true, "apply schema migrations before processing")
		workers = flag.Int("workers", 1, "concurrent workers; 1 = sequential with failure exit code")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "error: --dir is required")
		flag.Usage()
		os.Exit(2)
	}

	common.LoadDotenv(logger)
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(pool, logger)

	if *migrate {
		if err := repo.Migrate(ctx, pool, logger); err != nil {
			os.Exit(1)
		}
	}

	jobsRepo := repo.NewParseJobRepository(pool, logger)
	rostersRepo := repo.NewRosterRepository(pool, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		HeicConverter: cfg.OCR.HeicConverter,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	parser := roster.NewParser(roster.LayoutConfig{
		LineYTolerance: cfg.Parser.LineYTolerance,
		PCATopFraction: cfg.Parser.PCATopFraction,
		MaxAnchors:     cfg.Parser.MaxAnchors,
	})

	proc := processor.NewProcessor(logger,
		processor.NewOCRStage(jobsRepo, extractor, logger),
		processor.NewParseStage(logger, processor.Config{
			MinRoomsForReview: cfg.Pipeline.MinRoomsForReview,
			MinConfidence:     cfg.Pipeline.MinConfidence,
		}, jobsRepo, rostersRepo, parser))

	var paths []string
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	logger.Info("starting batch", "dir", *dir, "files", len(paths), "workers", *workers)

	if *workers > 1 {
		queue := async.NewProcessorQueue(proc, logger, async.WithWorkers(*workers))
		for _, path := range paths {
			_ = queue.Enqueue(ctx, async.Job{
				Path:        path,
				SubmittedAt: time.Now(),
				TraceID:     uuid.NewString(),
			})
		}
		queue.Shutdown(ctx)
		processed, failures := queue.Stats()
		logger.Info("batch complete", "files", len(paths), "processed", processed, "failures", failures)
		fmt.Printf("Batch complete: %d processed, %d failed of %d files\n",
			processed, failures, len(paths))
		if failures > 0 {
			os.Exit(1)
		}
		return
	}

	processed, failures := 0, 0
	for _, path := range paths {
		jobID, err := proc.ProcessFile(ctx, path)
		if err != nil {
			failures++
			logger.Error("sheet failed", "path", path,
				"detail", processor.FailureDetail(ctx, jobsRepo, jobID))
			continue
		}
		processed++
	}

	logger.Info("batch complete",
		"files", len(paths), "processed", processed, "failures", failures)

	fmt.Printf("Batch complete: %d processed, %d failed of %d files\n",
		processed, failures, len(paths))
	if failures > 0 {
		os.Exit(1)
	}
}
