package roster

import "strings"

// nameStopWords are table headers, shift labels, and tag abbreviations that
// OCR happily serves up where a person name is expected. Compared uppercase.
var nameStopWords = map[string]struct{}{
	"RN": {}, "RNS": {}, "PCA": {}, "PCAS": {}, "CNA": {},
	"ROOM": {}, "ROOMS": {}, "BED": {}, "BEDS": {}, "NAME": {}, "NAMES": {},
	"CHARGE": {}, "NURSE": {}, "CLINICAL": {}, "MENTOR": {}, "CTA": {},
	"SHIFT": {}, "DATE": {}, "UNIT": {}, "DAY": {}, "NIGHT": {}, "TEAM": {},
	"TOTAL": {}, "COUNT": {}, "CENSUS": {}, "NOTES": {}, "CARE": {}, "LEVEL": {},
	"ASSIGNMENT": {}, "ASSIGNMENTS": {}, "PATIENT": {}, "PATIENTS": {},
	"TELE": {}, "MS": {}, "ISO": {}, "SITTER": {}, "ADMIT": {}, "DRIP": {},
	"HEAVY": {}, "BG": {}, "NIH": {}, "TF": {}, "Q2": {},
}

func isNameStopWord(tok string) bool {
	_, ok := nameStopWords[strings.ToUpper(tok)]
	return ok
}

// cleanNameTokens reduces raw tokens to their alphabetic fragments and drops
// stop words and leftovers shorter than two letters.
func cleanNameTokens(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		a := alphaOnly(t)
		if len(a) < 2 || isNameStopWord(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// plausibleName is the heuristic gate between OCR noise and a person name:
// at least two alphabetic tokens, or a single token of five or more letters.
func plausibleName(tokens []string) bool {
	if len(tokens) >= 2 {
		return true
	}
	return len(tokens) == 1 && len(tokens[0]) >= 5
}
