package roster

// Parser turns an OCR or PDF-text result into a ParsedRoster. It is a pure
// function of its inputs plus the fixed keyword tables: no I/O, no state
// between calls, safe for concurrent use across goroutines. Problems are
// surfaced through the shape of the output (empty slices, the Outcome
// field), never through errors — the caller can always render a review
// screen instead of an error page.
type Parser struct {
	cfg LayoutConfig
}

// NewParser builds a parser for one form family. Zero-valued config fields
// fall back to the defaults.
func NewParser(cfg LayoutConfig) *Parser {
	return &Parser{cfg: cfg.withDefaults()}
}

// Config returns the effective layout configuration.
func (p *Parser) Config() LayoutConfig { return p.cfg }

// ParseText handles the text-only entry mode: no geometry is available, so
// only the leadership fields and a degenerate flat-text room scan run. Any
// rooms found land in a single undifferentiated "RN" bucket.
func (p *Parser) ParseText(text string) ParsedRoster {
	r := ParsedRoster{
		Meta: ParseLeadership(text),
		PCAs: []PCAAssignment{},
		RNs:  []RNAssignment{},
	}
	if codes := p.scanRoomCodes(text); len(codes) > 0 {
		r.RNs = append(r.RNs, fallbackBucket(codes))
	}
	r.Outcome = OutcomeOf(r)
	return r
}

// ParseDocument handles the word-geometry entry mode. When page dimensions
// cannot be derived, the geometric passes are skipped and only leadership
// fields are returned; that is a degraded outcome, not an error.
func (p *Parser) ParseDocument(doc Document) ParsedRoster {
	width, height, ok := p.dimensions(doc)
	if !ok {
		r := ParsedRoster{
			Meta: ParseLeadership(doc.Text),
			PCAs: []PCAAssignment{},
			RNs:  []RNAssignment{},
		}
		r.Outcome = OutcomeOf(r)
		return r
	}

	r := ParsedRoster{
		Meta: ParseLeadership(doc.Text),
		PCAs: ParsePCAs(doc.Words, height, p.cfg),
		RNs:  []RNAssignment{},
	}
	if r.PCAs == nil {
		r.PCAs = []PCAAssignment{}
	}

	tokens := CollectRoomTokens(doc.Words, height, p.cfg)
	anchors := FindRNAnchors(doc.Words, width, height, p.cfg)

	if len(anchors) == 0 {
		// Layout assumptions not met: one synthetic bucket holds every
		// valid room so nothing silently disappears.
		if codes := dedupSortedCodes(tokens); len(codes) > 0 {
			r.RNs = append(r.RNs, fallbackBucket(codes))
		}
		r.Outcome = OutcomeOf(r)
		return r
	}

	bands := ComputeBandRanges(anchors, width)
	buckets := AssignRoomsToBands(tokens, bands)

	// claimedRooms enforces one-room-one-owner across bands: iterating
	// bands left to right, the first band to claim a code keeps it, even
	// when boundary noise bucketed a straddling token twice.
	claimed := make(map[string]struct{})
	for i, band := range bands {
		rn := RNAssignment{Name: band.Anchor.Name, Rooms: []RoomAssignment{}}
		for _, t := range buckets[i] {
			if _, taken := claimed[t.Code]; taken {
				continue
			}
			claimed[t.Code] = struct{}{}
			care, notes := ParseCareAndNotes(doc.Words, width, band, t, p.cfg)
			if notes == nil {
				notes = []string{}
			}
			rn.Rooms = append(rn.Rooms, RoomAssignment{Room: t.Code, LevelOfCare: care, Notes: notes})
		}
		r.RNs = append(r.RNs, rn)
	}

	r.Outcome = OutcomeOf(r)
	return r
}

// dimensions resolves the page size: supplied values win, otherwise the
// maximum bbox extents stand in — but only when they exceed the guard, so a
// degenerate one-glyph input cannot masquerade as a page.
func (p *Parser) dimensions(doc Document) (width, height float64, ok bool) {
	width, height = doc.Width, doc.Height
	if width > 0 && height > 0 {
		return width, height, true
	}
	var maxX, maxY float64
	for _, w := range doc.Words {
		if w.X1 > maxX {
			maxX = w.X1
		}
		if w.Y1 > maxY {
			maxY = w.Y1
		}
	}
	if width <= 0 {
		width = maxX
	}
	if height <= 0 {
		height = maxY
	}
	if width <= p.cfg.MinDimension || height <= p.cfg.MinDimension {
		return 0, 0, false
	}
	return width, height, true
}

// scanRoomCodes extracts valid room codes from flat text, de-duplicated and
// sorted ascending.
func (p *Parser) scanRoomCodes(text string) []string {
	var tokens []RoomToken
	for _, run := range splitAlnumRuns(text) {
		if code := p.cfg.NormalizeToken(run); p.cfg.ValidRoom(code) {
			tokens = append(tokens, RoomToken{Code: code})
		}
	}
	return dedupSortedCodes(tokens)
}

func fallbackBucket(codes []string) RNAssignment {
	rooms := make([]RoomAssignment, len(codes))
	for i, c := range codes {
		rooms[i] = RoomAssignment{Room: c, Notes: []string{}}
	}
	return RNAssignment{Name: "RN", Rooms: rooms}
}

// OutcomeOf derives the outcome from what a roster actually contains, so
// every producer (parser, importer) reports degradation the same way.
func OutcomeOf(r ParsedRoster) Outcome {
	if len(r.RNs) > 0 || len(r.PCAs) > 0 {
		return OutcomeFull
	}
	if r.Meta != (Meta{}) {
		return OutcomeLeadershipOnly
	}
	return OutcomeEmpty
}
