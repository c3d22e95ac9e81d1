package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/export"
	repo "github.com/chargeboard/rosterscan/internal/repository"
)

// rosterexport: stored roster -> XLSX workbook, re-importable by rosterimport.
func main() {
	var (
		unit = flag.String("unit", "", "unit label, e.g. 2E (required)")
		date = flag.String("date", "", "shift date label as stored, e.g. 10/14/25 (required)")
		out  = flag.String("out", "roster.xlsx", "output XLSX path")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *unit == "" || *date == "" {
		fmt.Fprintln(os.Stderr, "error: --unit and --date are required")
		flag.Usage()
		os.Exit(2)
	}

	common.LoadDotenv(logger)
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(pool, logger)

	svc := export.NewService(repo.NewRosterRepository(pool, logger), logger)
	data, err := svc.ExportUnitDateXLSX(ctx, *unit, *date)
	if err != nil {
		logger.Error("export failed", "unit", *unit, "date", *date, "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out, "bytes", len(data))
	fmt.Printf("Exported %s %s -> %s\n", *unit, *date, *out)
}
