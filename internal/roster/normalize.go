package roster

import "strings"

// NormalizeToken cleans one raw OCR token into a canonical room-code
// candidate. Upper-cases, strips leading/trailing non-alphanumerics, then
// corrects the common OCR confusions: O reads as 0 and I/L read as 1. The
// substitutions apply to the whole token because room codes come from a
// closed numeric grammar where letters never legitimately appear except as a
// trailing A/B bed suffix. A trailing 8 after a full numeric prefix is
// corrected to B, a frequent misread on the printed forms; the prefix length
// comes from RoomPrefixDigits so the correction follows the configured
// grammar.
//
// Pure and total: never fails, and normalizing twice equals normalizing once.
func (c LayoutConfig) NormalizeToken(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimFunc(s, func(r rune) bool { return !isAlnum(r) })
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'O':
			b.WriteByte('0')
		case 'I', 'L':
			b.WriteByte('1')
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Trailing misread 8 -> B when the rest is a full numeric room prefix.
	p := c.RoomPrefixDigits
	if p > 0 && len(s) == p+1 && s[p] == '8' && allDigits(s[:p]) {
		s = s[:p] + "B"
	}
	return s
}

// alphaOnly keeps only the letters of a raw token, preserving case.
// Used for name fragments, where the numeric OCR corrections must not apply.
func alphaOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
