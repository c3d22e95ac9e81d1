package roster

// Word is one OCR or PDF-text token with its bounding box in page space.
// Produced entirely by the upstream extractor; immutable for the parse call.
type Word struct {
	Text string  `json:"text"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Conf float64 `json:"conf,omitempty"` // 0..100, -1 when the engine reports none
}

// CenterX returns the horizontal center of the word's bounding box.
func (w Word) CenterX() float64 { return (w.X0 + w.X1) / 2 }

// CenterY returns the vertical center of the word's bounding box.
func (w Word) CenterY() float64 { return (w.Y0 + w.Y1) / 2 }

// Line is an ordered run of words sharing an approximate y coordinate.
// Derived per parse; never persisted.
type Line struct {
	Y     float64 // representative y0 (first word admitted to the line)
	Words []Word
	Text  string // word texts joined with single spaces, left to right
}

// RoomToken is a word whose cleaned text matched the room-code grammar.
// It keeps the originating word so detail extraction can query nearby text.
type RoomToken struct {
	Code string // normalized room code, e.g. "214B"
	Word Word
}

// NameAnchor is a candidate RN identity: the display name and the centroid
// of the words that produced it. One anchor seeds one band.
type NameAnchor struct {
	Name string
	X, Y float64
}

// Band is a horizontal x-range of the page attributed to one RN.
// Bands produced by ComputeBandRanges partition [0, width) with no gaps.
type Band struct {
	Anchor      NameAnchor
	Left, Right float64
}

// RoomAssignment is one room owned by an RN, with level of care and note tags.
type RoomAssignment struct {
	Room        string   `json:"room"`
	LevelOfCare string   `json:"levelOfCare,omitempty"` // "Tele" | "MS" | ""
	Notes       []string `json:"notes"`
}

// PCAAssignment is one PCA row from the upper region of the sheet.
type PCAAssignment struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Rooms []string `json:"rooms"`
}

// RNAssignment is one RN with the rooms claimed by their band.
type RNAssignment struct {
	Name  string           `json:"name"`
	Rooms []RoomAssignment `json:"rooms"`
}

// Meta holds the geometry-free header fields of the sheet.
// Empty string means the label was not found; that is never an error.
type Meta struct {
	ChargeNurse string `json:"chargeNurse"`
	ResourceRN  string `json:"resourceRn"`
	CTA         string `json:"cta"`
	UnitLabel   string `json:"unitLabel"`
	DateLabel   string `json:"dateLabel"`
}

// Outcome states how much of the sheet the parser could reconstruct.
// Degradation is reported through this field, never through errors.
type Outcome string

const (
	// OutcomeFull means at least one RN or PCA assignment was extracted.
	OutcomeFull Outcome = "FULL"
	// OutcomeLeadershipOnly means only header fields were extracted, e.g.
	// because page dimensions could not be derived.
	OutcomeLeadershipOnly Outcome = "LEADERSHIP_ONLY"
	// OutcomeEmpty means nothing usable was found.
	OutcomeEmpty Outcome = "EMPTY"
)

// ParsedRoster is the parser's output. Constructed fresh per parse call and
// never mutated after return; the caller owns all subsequent mutation.
type ParsedRoster struct {
	Outcome Outcome         `json:"outcome"`
	Meta    Meta            `json:"meta"`
	PCAs    []PCAAssignment `json:"pcas"`
	RNs     []RNAssignment  `json:"rns"`
}

// Document is the canonical word-geometry input shape: full text plus the
// word list with bounding boxes. Width/Height are optional; when zero they
// are inferred from the maximum bbox extents.
type Document struct {
	Text   string  `json:"text"`
	Words  []Word  `json:"words"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}
