// Package export renders stored rosters as XLSX workbooks using the same
// Role/Name/Room/Care/Notes/Count column contract the importer reads, so an
// exported workbook can be re-imported unchanged.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/repository"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// Service is a tiny façade over the roster repository that produces XLSX bytes.
type Service struct {
	rostersRepo repository.RosterRepository
	logger      *slog.Logger
}

func NewService(rostersRepo repository.RosterRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rostersRepo: rostersRepo, logger: logger}
}

// ExportUnitDateXLSX renders the most recent stored roster for a unit and
// shift date.
func (s *Service) ExportUnitDateXLSX(ctx context.Context, unitLabel, shiftDate string) ([]byte, error) {
	start := time.Now()

	recs, err := s.rostersRepo.ListByUnitAndDate(ctx, unitLabel, shiftDate)
	if err != nil {
		return nil, fmt.Errorf("query rosters: %w", err)
	}
	if len(recs) == 0 {
		return nil, common.NewAppError("ROSTER_NOT_FOUND",
			fmt.Sprintf("no roster stored for unit %q on %q", unitLabel, shiftDate),
			common.ErrNotFound)
	}

	var parsed roster.ParsedRoster
	if err := json.Unmarshal(recs[0].Payload, &parsed); err != nil {
		return nil, fmt.Errorf("decode roster payload: %w", err)
	}

	buf, err := RosterToXLSX(parsed)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"unit", unitLabel, "date", shiftDate,
		"rns", len(parsed.RNs), "pcas", len(parsed.PCAs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

// RosterToXLSX renders one roster as an XLSX workbook.
func RosterToXLSX(r roster.ParsedRoster) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Roster"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	row := 1
	write := func(cells ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := write("Role", "Name", "Room", "Care", "Notes", "Count"); err != nil {
		return nil, err
	}

	metaRows := []struct{ role, name string }{
		{"CHARGE", r.Meta.ChargeNurse},
		{"MENTOR", r.Meta.ResourceRN},
		{"CTA", r.Meta.CTA},
		{"UNIT", r.Meta.UnitLabel},
		{"DATE", r.Meta.DateLabel},
	}
	for _, m := range metaRows {
		if m.name == "" {
			continue
		}
		if err := write(m.role, m.name); err != nil {
			return nil, err
		}
	}

	for _, rn := range r.RNs {
		for _, room := range rn.Rooms {
			if err := write("RN", rn.Name, room.Room, room.LevelOfCare,
				strings.Join(room.Notes, ",")); err != nil {
				return nil, err
			}
		}
	}
	for _, pca := range r.PCAs {
		if err := write("PCA", pca.Name, strings.Join(pca.Rooms, " "), "", "", pca.Count); err != nil {
			return nil, err
		}
	}

	// widen the name and room columns
	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "E", "E", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
