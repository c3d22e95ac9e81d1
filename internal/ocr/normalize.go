package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-|]{3,}\s*$`)
)

// Normalize collapses noisy whitespace and strips grid-rule noise lines.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank
// line. Character-level confusable fixes happen downstream per token, never
// here, so valid names are left alone.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	// collapse too many blank lines
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	// trim trailing spaces on lines
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(s)
}

var (
	reRoomish = regexp.MustCompile(`\b2[0-2]\d[ABab]?\b`)
	reRoleish = regexp.MustCompile(`(?i)\b(charge\s*nurse|pca|cta|rn|tele|med[\s\-]?surg)\b`)
	reDateish = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(/\d{2,4})?\b`)
)

// heuristicConfidence scores decoded text by how much it looks like a shift
// sheet: room codes, role labels, a shift date, and enough content overall.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base
	if len(reRoomish.FindAllString(txt, 3)) >= 3 {
		score += 0.25
	}
	if reRoleish.MatchString(txt) {
		score += 0.2
	}
	if reDateish.MatchString(txt) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
