package roster

import (
	"regexp"
	"strings"
)

// tagPattern pairs a word-boundary regex with the canonical tag it emits.
type tagPattern struct {
	re  *regexp.Regexp
	tag string
}

// carePatterns map nearby text to a level of care. First match wins.
var carePatterns = []tagPattern{
	{regexp.MustCompile(`(?i)\btele\b`), "Tele"},
	{regexp.MustCompile(`(?i)\bms\b|\bmed[\s\-]?surg\b`), "MS"},
}

// notePatterns map nearby text to acuity note tags. All matches are
// collected, de-duplicated, in table order. TELE/MS are echoed as notes for
// redundancy with the care level.
var notePatterns = []tagPattern{
	{regexp.MustCompile(`(?i)\biso\b`), "ISO"},
	{regexp.MustCompile(`(?i)\bsitter\b`), "SITTER"},
	{regexp.MustCompile(`(?i)\bbg\b`), "BG"},
	{regexp.MustCompile(`(?i)\bnih\b`), "NIH"},
	{regexp.MustCompile(`(?i)\badmit\b`), "ADMIT"},
	{regexp.MustCompile(`(?i)\bdrip\b`), "DRIP"},
	{regexp.MustCompile(`(?i)\bq2\b`), "Q2"},
	{regexp.MustCompile(`(?i)\bheavy\b`), "HEAVY"},
	{regexp.MustCompile(`(?i)\btf\b`), "TF"},
	{regexp.MustCompile(`(?i)\btele\b`), "TELE"},
	{regexp.MustCompile(`(?i)\bms\b|\bmed[\s\-]?surg\b`), "MS"},
}

// ParseCareAndNotes inspects a small box around a room token and reads the
// care level and note tags from the words inside it. The box extends a
// little left of the token, a configured fraction of the page width right,
// and a row's worth up and down — then is clamped to the owning band's
// x-range so a neighboring RN's detail text is never read.
func ParseCareAndNotes(words []Word, width float64, band Band, tok RoomToken, cfg LayoutConfig) (care string, notes []string) {
	x0 := tok.Word.X0 - cfg.DetailLeftPad
	x1 := tok.Word.X1 + cfg.DetailRightFraction*width
	if x0 < band.Left {
		x0 = band.Left
	}
	if x1 > band.Right {
		x1 = band.Right
	}
	y0 := tok.Word.Y0 - cfg.DetailPadAbove
	y1 := tok.Word.Y1 + cfg.DetailPadBelow

	var parts []string
	for _, w := range words {
		cx, cy := w.CenterX(), w.CenterY()
		if cx >= x0 && cx <= x1 && cy >= y0 && cy <= y1 {
			parts = append(parts, w.Text)
		}
	}
	joined := strings.Join(parts, " ")

	for _, p := range carePatterns {
		if p.re.MatchString(joined) {
			care = p.tag
			break
		}
	}
	seen := make(map[string]struct{})
	for _, p := range notePatterns {
		if !p.re.MatchString(joined) {
			continue
		}
		if _, dup := seen[p.tag]; dup {
			continue
		}
		seen[p.tag] = struct{}{}
		notes = append(notes, p.tag)
	}
	return care, notes
}
