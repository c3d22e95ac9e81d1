package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextLeadershipOnly(t *testing.T) {
	p := NewParser(LayoutConfig{})

	r := p.ParseText("Charge Nurse: Smith Clinical Mentor: Lee CTA: Jones")
	assert.Equal(t, "Smith", r.Meta.ChargeNurse)
	assert.Equal(t, "Lee", r.Meta.ResourceRN)
	assert.Equal(t, "Jones", r.Meta.CTA)
	assert.Empty(t, r.PCAs)
	assert.Empty(t, r.RNs)
	assert.Equal(t, OutcomeLeadershipOnly, r.Outcome)
}

func TestParseTextFlatRoomScan(t *testing.T) {
	p := NewParser(LayoutConfig{})

	r := p.ParseText("Rooms tonight: 203, 201, 214B, 203")
	require.Len(t, r.RNs, 1)
	assert.Equal(t, "RN", r.RNs[0].Name)
	codes := make([]string, 0, len(r.RNs[0].Rooms))
	for _, ra := range r.RNs[0].Rooms {
		codes = append(codes, ra.Room)
	}
	assert.Equal(t, []string{"201", "203", "214B"}, codes)
	assert.Equal(t, OutcomeFull, r.Outcome)
}

func TestParseTextEmpty(t *testing.T) {
	p := NewParser(LayoutConfig{})
	r := p.ParseText("nothing useful here")
	assert.Equal(t, OutcomeEmpty, r.Outcome)
}

func TestParseDocumentMissingDimensions(t *testing.T) {
	p := NewParser(LayoutConfig{})

	// All extents under the 100px guard: geometry is untrustworthy, so
	// only the leadership pass runs even though a room code is present.
	doc := Document{
		Text: "Charge Nurse: Smith 214",
		Words: []Word{
			{Text: "214", X0: 10, Y0: 10, X1: 40, Y1: 22},
		},
	}
	r := p.ParseDocument(doc)
	assert.Equal(t, "Smith", r.Meta.ChargeNurse)
	assert.Empty(t, r.RNs)
	assert.Empty(t, r.PCAs)
	assert.Equal(t, OutcomeLeadershipOnly, r.Outcome)
}

func TestParseDocumentFallbackBucket(t *testing.T) {
	p := NewParser(LayoutConfig{})

	// Room tokens but zero plausible name anchors -> one synthetic bucket.
	doc := Document{
		Width:  1000,
		Height: 1000,
		Words: []Word{
			{Text: "216", X0: 100, Y0: 500, X1: 130, Y1: 514},
			{Text: "2I4B", X0: 300, Y0: 500, X1: 330, Y1: 514},
			{Text: "216", X0: 500, Y0: 600, X1: 530, Y1: 614},
		},
	}
	r := p.ParseDocument(doc)
	require.Len(t, r.RNs, 1)
	assert.Equal(t, "RN", r.RNs[0].Name)

	codes := make([]string, 0, len(r.RNs[0].Rooms))
	for _, ra := range r.RNs[0].Rooms {
		codes = append(codes, ra.Room)
	}
	assert.Equal(t, []string{"214B", "216"}, codes)
	assert.Equal(t, OutcomeFull, r.Outcome)
}

// fullSheet builds a small but complete sheet: one PCA row up top, two RN
// columns below with rooms, a care tag, and a room token duplicated across
// both bands.
func fullSheet() Document {
	return Document{
		Text:   "Unit: 2E Charge Nurse: Smith",
		Width:  1000,
		Height: 1000,
		Words: []Word{
			// PCA block (upper region)
			{Text: "Gonzalez", X0: 50, Y0: 100, X1: 110, Y1: 114},
			{Text: "2", X0: 130, Y0: 100, X1: 140, Y1: 114},
			{Text: "201", X0: 160, Y0: 100, X1: 190, Y1: 114},
			{Text: "203", X0: 210, Y0: 100, X1: 240, Y1: 114},
			// RN anchors (lower region, left of the room lists)
			{Text: "Jones", X0: 100, Y0: 500, X1: 140, Y1: 514},
			{Text: "Garcia", X0: 350, Y0: 505, X1: 390, Y1: 519},
			// Jones's rooms and a care tag next to 214
			{Text: "214", X0: 100, Y0: 560, X1: 130, Y1: 574},
			{Text: "Tele", X0: 140, Y0: 560, X1: 170, Y1: 574},
			{Text: "216", X0: 150, Y0: 600, X1: 180, Y1: 614},
			// Garcia's rooms; 216 duplicated into the second band
			{Text: "216", X0: 400, Y0: 600, X1: 430, Y1: 614},
			{Text: "218", X0: 420, Y0: 640, X1: 450, Y1: 654},
		},
	}
}

func TestParseDocumentFullSheet(t *testing.T) {
	p := NewParser(LayoutConfig{})
	r := p.ParseDocument(fullSheet())

	assert.Equal(t, "Smith", r.Meta.ChargeNurse)
	assert.Equal(t, "2E", r.Meta.UnitLabel)
	assert.Equal(t, OutcomeFull, r.Outcome)

	require.Len(t, r.PCAs, 1)
	assert.Equal(t, "Gonzalez", r.PCAs[0].Name)
	assert.Equal(t, 2, r.PCAs[0].Count)
	assert.Equal(t, []string{"201", "203"}, r.PCAs[0].Rooms)

	require.Len(t, r.RNs, 2)
	assert.Equal(t, "Jones", r.RNs[0].Name)
	assert.Equal(t, "Garcia", r.RNs[1].Name)

	jones := r.RNs[0].Rooms
	require.Len(t, jones, 2)
	assert.Equal(t, "214", jones[0].Room)
	assert.Equal(t, "Tele", jones[0].LevelOfCare)
	assert.Contains(t, jones[0].Notes, "TELE")
	assert.Equal(t, "216", jones[1].Room)

	// 216 was claimed by the first band; Garcia keeps only 218.
	garcia := r.RNs[1].Rooms
	require.Len(t, garcia, 1)
	assert.Equal(t, "218", garcia[0].Room)
}

func TestParseDocumentOneRoomOneOwner(t *testing.T) {
	p := NewParser(LayoutConfig{})
	r := p.ParseDocument(fullSheet())

	seen := make(map[string]int)
	for _, rn := range r.RNs {
		for _, room := range rn.Rooms {
			seen[room.Room]++
		}
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "room %s owned by %d RNs", code, n)
	}
}

func TestParserIsStateless(t *testing.T) {
	p := NewParser(LayoutConfig{})
	doc := fullSheet()

	first := p.ParseDocument(doc)
	second := p.ParseDocument(doc)
	assert.Equal(t, first, second)
}
