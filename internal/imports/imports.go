// Package imports maps structured roster exports (XLSX, CSV) onto the same
// ParsedRoster shape the layout parser produces, so downstream validation
// and persistence see one contract regardless of source.
package imports

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// row is one spreadsheet record after header mapping. Role decides how the
// rest of the columns are read.
type row struct {
	Role  string
	Name  string
	Room  string
	Care  string
	Notes string
	Count string
}

// header column aliases, all matched case-insensitively after trimming.
var columnAliases = map[string]string{
	"role":       "role",
	"type":       "role",
	"name":       "name",
	"staff":      "name",
	"room":       "room",
	"rooms":      "room",
	"care":       "care",
	"level":      "care",
	"loc":        "care",
	"notes":      "notes",
	"tags":       "notes",
	"count":      "count",
	"patients":   "count",
	"assignment": "room",
}

// mapHeader resolves a header row into column index -> canonical field.
// Returns an error when neither a role nor a name column is present, since
// nothing useful can be read without them.
func mapHeader(cells []string) (map[int]string, error) {
	cols := make(map[int]string)
	for i, c := range cells {
		key := strings.ToLower(strings.TrimSpace(c))
		if canon, ok := columnAliases[key]; ok {
			cols[i] = canon
		}
	}
	seen := make(map[string]bool)
	for _, f := range cols {
		seen[f] = true
	}
	if !seen["role"] || !seen["name"] {
		return nil, fmt.Errorf("header must include role and name columns, got %v", cells)
	}
	return cols, nil
}

func rowFromCells(cols map[int]string, cells []string) row {
	var r row
	for i, c := range cells {
		v := strings.TrimSpace(c)
		switch cols[i] {
		case "role":
			r.Role = strings.ToUpper(v)
		case "name":
			r.Name = v
		case "room":
			r.Room = v
		case "care":
			r.Care = v
		case "notes":
			r.Notes = v
		case "count":
			r.Count = v
		}
	}
	return r
}

var reSplitRooms = regexp.MustCompile(`[,;/\s]+`)

// builder accumulates rows into a ParsedRoster. RN and PCA rows with the
// same name merge; order of first appearance is kept for RNs, PCAs sort by
// name like the parser's output.
type builder struct {
	meta     roster.Meta
	rnOrder  []string
	rns      map[string]*roster.RNAssignment
	pcaOrder []string
	pcas     map[string]*roster.PCAAssignment
	cfg      roster.LayoutConfig
}

func newBuilder() *builder {
	return &builder{
		rns:  make(map[string]*roster.RNAssignment),
		pcas: make(map[string]*roster.PCAAssignment),
		cfg:  roster.DefaultLayoutConfig(),
	}
}

func (b *builder) add(r row) error {
	switch r.Role {
	case "RN", "NURSE":
		return b.addRN(r)
	case "PCA", "CNA", "TECH":
		return b.addPCA(r)
	case "CHARGE", "CHARGE NURSE":
		b.meta.ChargeNurse = r.Name
	case "MENTOR", "RESOURCE", "CLINICAL MENTOR", "RESOURCE RN":
		b.meta.ResourceRN = r.Name
	case "CTA":
		b.meta.CTA = r.Name
	case "UNIT":
		b.meta.UnitLabel = r.Name
	case "DATE", "SHIFT":
		b.meta.DateLabel = r.Name
	case "":
		// blank padding row
	default:
		return fmt.Errorf("unknown role %q", r.Role)
	}
	return nil
}

func (b *builder) addRN(r row) error {
	if r.Name == "" {
		return fmt.Errorf("RN row missing name")
	}
	rn, ok := b.rns[r.Name]
	if !ok {
		rn = &roster.RNAssignment{Name: r.Name, Rooms: []roster.RoomAssignment{}}
		b.rns[r.Name] = rn
		b.rnOrder = append(b.rnOrder, r.Name)
	}
	for _, code := range b.roomCodes(r.Room) {
		rn.Rooms = append(rn.Rooms, roster.RoomAssignment{
			Room:        code,
			LevelOfCare: normalizeCare(r.Care),
			Notes:       normalizeNotes(r.Notes),
		})
	}
	return nil
}

func (b *builder) addPCA(r row) error {
	if r.Name == "" {
		return fmt.Errorf("PCA row missing name")
	}
	p, ok := b.pcas[r.Name]
	if !ok {
		p = &roster.PCAAssignment{Name: r.Name, Rooms: []string{}}
		b.pcas[r.Name] = p
		b.pcaOrder = append(b.pcaOrder, r.Name)
	}
	p.Rooms = append(p.Rooms, b.roomCodes(r.Room)...)
	if r.Count != "" {
		n, err := strconv.Atoi(r.Count)
		if err != nil || n <= 0 {
			return fmt.Errorf("PCA row %q: bad count %q", r.Name, r.Count)
		}
		p.Count = n
	}
	return nil
}

// roomCodes splits a cell like "201, 203 205B" into normalized valid codes.
// Invalid codes are dropped, matching the parser's tolerance for junk.
func (b *builder) roomCodes(cell string) []string {
	var out []string
	for _, part := range reSplitRooms.Split(cell, -1) {
		if part == "" {
			continue
		}
		code := b.cfg.NormalizeToken(part)
		if b.cfg.ValidRoom(code) {
			out = append(out, code)
		}
	}
	return out
}

func (b *builder) roster() roster.ParsedRoster {
	out := roster.ParsedRoster{
		Meta: b.meta,
		PCAs: []roster.PCAAssignment{},
		RNs:  []roster.RNAssignment{},
	}
	for _, name := range b.rnOrder {
		out.RNs = append(out.RNs, *b.rns[name])
	}
	names := append([]string(nil), b.pcaOrder...)
	sort.Strings(names)
	for _, name := range names {
		p := *b.pcas[name]
		sort.Strings(p.Rooms)
		if p.Count == 0 {
			p.Count = len(p.Rooms)
		}
		out.PCAs = append(out.PCAs, p)
	}
	out.Outcome = roster.OutcomeOf(out)
	return out
}

func normalizeCare(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TELE", "TELEMETRY":
		return string(constants.CareTele)
	case "MS", "MED SURG", "MED-SURG", "MEDSURG":
		return string(constants.CareMS)
	}
	return ""
}

// normalizeNotes uppercases and keeps only the known note tags, in the
// canonical tag order.
func normalizeNotes(s string) []string {
	present := make(map[string]bool)
	for _, part := range reSplitRooms.Split(s, -1) {
		if part == "" {
			continue
		}
		present[strings.ToUpper(part)] = true
	}
	out := []string{}
	for _, tag := range constants.NoteTags {
		if present[tag] {
			out = append(out, tag)
		}
	}
	return out
}

// fromRows drives the builder over a rectangular cell grid: first non-empty
// line is the header, the rest are records.
func fromRows(grid [][]string) (roster.ParsedRoster, error) {
	var cols map[int]string
	for _, cells := range grid {
		if isBlankRow(cells) {
			continue
		}
		if cols == nil {
			m, err := mapHeader(cells)
			if err != nil {
				return roster.ParsedRoster{}, err
			}
			cols = m
			continue
		}
		break
	}
	if cols == nil {
		return roster.ParsedRoster{}, fmt.Errorf("no header row found")
	}

	b := newBuilder()
	headerSeen := false
	for i, cells := range grid {
		if isBlankRow(cells) {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		if err := b.add(rowFromCells(cols, cells)); err != nil {
			return roster.ParsedRoster{}, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return b.roster(), nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
