package roster

import "regexp"

// defaultRoomPattern matches the 200-228 room range of the original unit:
// numeric prefix plus an optional A/B bed suffix.
var defaultRoomPattern = regexp.MustCompile(`^2(0\d|1\d|2[0-8])[AB]?$`)

// LayoutConfig holds the tuned priors for one roster form family. The
// fractions and pixel tolerances below were fit against sample sheets of the
// PCA-block-on-top / RN-grid-below layout; retargeting the parser to another
// layout means re-tuning these against labeled samples, not editing code.
type LayoutConfig struct {
	// LineYTolerance is the y0 tolerance (px) for grouping words into lines.
	LineYTolerance float64

	// PCATopFraction bounds the upper region scanned for PCA rows.
	PCATopFraction float64

	// RNTopFraction / RNBottomFraction bound the lower region scanned for
	// RN anchors and room tokens.
	RNTopFraction    float64
	RNBottomFraction float64

	// NameLeftFraction bounds the left region where RN name tokens appear.
	NameLeftFraction float64

	// AnchorXTolFraction is the x-center clustering tolerance for anchor
	// columns, as a fraction of page width.
	AnchorXTolFraction float64

	// AnchorYTolerance is the y clustering tolerance (px) separating one
	// name row per RN inside a column.
	AnchorYTolerance float64

	// MaxAnchors caps detected anchors at a plausible staffing count.
	MaxAnchors int

	// Detail box geometry around a room token, before clamping to the band.
	DetailLeftPad       float64
	DetailRightFraction float64
	DetailPadAbove      float64
	DetailPadBelow      float64

	// RoomPattern is the per-deployment room-code grammar. RoomPrefixDigits
	// is the numeric prefix length used by the trailing-8 correction.
	RoomPattern      *regexp.Regexp
	RoomPrefixDigits int

	// MinDimension guards width/height inference: an inferred extent must
	// exceed this to be trusted (rejects degenerate single-glyph inputs).
	MinDimension float64
}

// DefaultLayoutConfig returns the priors for the original form family.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		LineYTolerance:      14,
		PCATopFraction:      0.42,
		RNTopFraction:       0.45,
		RNBottomFraction:    0.95,
		NameLeftFraction:    0.45,
		AnchorXTolFraction:  0.04,
		AnchorYTolerance:    22,
		MaxAnchors:          10,
		DetailLeftPad:       10,
		DetailRightFraction: 0.26,
		DetailPadAbove:      22,
		DetailPadBelow:      30,
		RoomPattern:         defaultRoomPattern,
		RoomPrefixDigits:    3,
		MinDimension:        100,
	}
}

// withDefaults fills any zero-valued field so a partially specified config
// is still usable.
func (c LayoutConfig) withDefaults() LayoutConfig {
	d := DefaultLayoutConfig()
	if c.LineYTolerance <= 0 {
		c.LineYTolerance = d.LineYTolerance
	}
	if c.PCATopFraction <= 0 {
		c.PCATopFraction = d.PCATopFraction
	}
	if c.RNTopFraction <= 0 {
		c.RNTopFraction = d.RNTopFraction
	}
	if c.RNBottomFraction <= 0 {
		c.RNBottomFraction = d.RNBottomFraction
	}
	if c.NameLeftFraction <= 0 {
		c.NameLeftFraction = d.NameLeftFraction
	}
	if c.AnchorXTolFraction <= 0 {
		c.AnchorXTolFraction = d.AnchorXTolFraction
	}
	if c.AnchorYTolerance <= 0 {
		c.AnchorYTolerance = d.AnchorYTolerance
	}
	if c.MaxAnchors <= 0 {
		c.MaxAnchors = d.MaxAnchors
	}
	if c.DetailLeftPad <= 0 {
		c.DetailLeftPad = d.DetailLeftPad
	}
	if c.DetailRightFraction <= 0 {
		c.DetailRightFraction = d.DetailRightFraction
	}
	if c.DetailPadAbove <= 0 {
		c.DetailPadAbove = d.DetailPadAbove
	}
	if c.DetailPadBelow <= 0 {
		c.DetailPadBelow = d.DetailPadBelow
	}
	if c.RoomPattern == nil {
		c.RoomPattern = d.RoomPattern
	}
	if c.RoomPrefixDigits <= 0 {
		c.RoomPrefixDigits = d.RoomPrefixDigits
	}
	if c.MinDimension <= 0 {
		c.MinDimension = d.MinDimension
	}
	return c
}

// ValidRoom reports whether a normalized token matches the room grammar.
func (c LayoutConfig) ValidRoom(code string) bool {
	return code != "" && c.RoomPattern.MatchString(code)
}
