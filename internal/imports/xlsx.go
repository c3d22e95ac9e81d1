package imports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/chargeboard/rosterscan/internal/roster"
)

// ReadXLSX reads the first sheet of an XLSX roster export.
func ReadXLSX(r io.Reader) (roster.ParsedRoster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return roster.ParsedRoster{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return roster.ParsedRoster{}, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return roster.ParsedRoster{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows)
}

// ReadXLSXFile opens a roster export from disk.
func ReadXLSXFile(path string) (roster.ParsedRoster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return roster.ParsedRoster{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return roster.ParsedRoster{}, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return roster.ParsedRoster{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows)
}
