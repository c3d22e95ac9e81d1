package roster

import (
	"regexp"
	"strings"
)

// Leadership fields are extracted from the flat text with no geometry: the
// labels float around the header of the sheet and survive OCR far better
// than the grid does. Separators between label and name vary (colon, dash,
// nothing), so the patterns are whitespace- and punctuation-tolerant.
var (
	reChargeNurse = regexp.MustCompile(`(?i)charge\s*nurse[\s:.\-]*([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`)
	reMentor      = regexp.MustCompile(`(?i)(?:clinical\s*)?mentor[\s:.\-]*([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`)
	reCTA         = regexp.MustCompile(`(?i)\bCTA[\s:.\-]*([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`)
	reUnitLabel   = regexp.MustCompile(`(?i)\bunit[\s:.\-]*([A-Za-z0-9][A-Za-z0-9\-]*)`)
	reDateLabel   = regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}(?:[/\-]\d{2,4})?\b`)
)

// ParseLeadership extracts the charge nurse, resource RN (clinical mentor),
// and CTA name fields from flat text. A label that is missing yields an
// empty string; that is not an error.
func ParseLeadership(text string) Meta {
	return Meta{
		ChargeNurse: matchLabeledName(reChargeNurse, text),
		ResourceRN:  matchLabeledName(reMentor, text),
		CTA:         matchLabeledName(reCTA, text),
		UnitLabel:   matchGroup(reUnitLabel, text),
		DateLabel:   reDateLabel.FindString(text),
	}
}

// matchLabeledName captures up to three words after a label, then trims the
// tail at the first word that is itself a label word. On these sheets the
// next field's label often follows the name with no separator, so a greedy
// capture of "Smith Clinical Mentor" must be cut back to "Smith".
func matchLabeledName(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	words := strings.Fields(m[1])
	kept := words[:0]
	for _, w := range words {
		if isNameStopWord(w) {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func matchGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
