package imports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/chargeboard/rosterscan/internal/roster"
)

// ReadCSV reads a CSV roster export with the same column contract as XLSX.
func ReadCSV(r io.Reader) (roster.ParsedRoster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports often have ragged trailing cells
	cr.TrimLeadingSpace = true

	var grid [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return roster.ParsedRoster{}, fmt.Errorf("read csv: %w", err)
		}
		grid = append(grid, rec)
	}
	return fromRows(grid)
}
