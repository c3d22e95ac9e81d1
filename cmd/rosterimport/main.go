package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chargeboard/rosterscan/internal/contract"
	"github.com/chargeboard/rosterscan/internal/imports"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// rosterimport: structured XLSX/CSV roster export -> roster JSON on stdout.
func main() {
	var (
		file   = flag.String("file", "", "roster export to import: .xlsx or .csv (required)")
		pretty = flag.Bool("pretty", false, "indent the JSON output")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "error: --file is required")
		flag.Usage()
		os.Exit(2)
	}

	var (
		parsed roster.ParsedRoster
		err    error
	)
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".xlsx":
		parsed, err = imports.ReadXLSXFile(*file)
	case ".csv":
		var f *os.File
		f, err = os.Open(*file)
		if err == nil {
			parsed, err = imports.ReadCSV(f)
			_ = f.Close()
		}
	default:
		fmt.Fprintf(os.Stderr, "error: unsupported extension %q (want .xlsx or .csv)\n", filepath.Ext(*file))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("import failed", "file", *file, "error", err)
		os.Exit(1)
	}

	// the importer reads rooms with the default grammar
	payload, err := contract.ValidateRoster(parsed, "")
	if err != nil {
		logger.Error("roster contract violation", "error", err)
		os.Exit(1)
	}

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
