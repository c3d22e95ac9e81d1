package roster

import (
	"sort"
	"strings"
)

// ParsePCAs extracts (name, declared count, room list) triples from the PCA
// block in the upper region of the page. A line needs at least two room
// tokens to count as a PCA row — one lone room-shaped token is too weak a
// signal on these sheets. The declared count is a standalone 1-9 digit
// sitting between the name and the room list; when absent, the extracted
// room count stands in. Lines whose leading text fails the person-name
// filter are discarded.
func ParsePCAs(words []Word, height float64, cfg LayoutConfig) []PCAAssignment {
	cut := cfg.PCATopFraction * height
	var upper []Word
	for _, w := range words {
		if w.Y0 <= cut {
			upper = append(upper, w)
		}
	}

	var out []PCAAssignment
	seen := make(map[string]struct{})
	for _, line := range GroupWordsIntoLines(upper, cfg.LineYTolerance) {
		pca, ok := parsePCALine(line, cfg)
		if !ok {
			continue
		}
		key := pcaKey(pca)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, pca)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func parsePCALine(line Line, cfg LayoutConfig) (PCAAssignment, bool) {
	var rooms []string
	roomSeen := make(map[string]struct{})
	firstRoomWord := -1
	for i, w := range line.Words {
		// OCR glues list items together ("201,203"), so split each word
		// into alphanumeric runs before normalizing.
		for _, piece := range splitAlnumRuns(w.Text) {
			code := cfg.NormalizeToken(piece)
			if !cfg.ValidRoom(code) {
				continue
			}
			if firstRoomWord < 0 {
				firstRoomWord = i
			}
			if _, dup := roomSeen[code]; dup {
				continue
			}
			roomSeen[code] = struct{}{}
			rooms = append(rooms, code)
		}
	}
	if len(rooms) < 2 {
		return PCAAssignment{}, false
	}

	count := len(rooms)
	nameEnd := firstRoomWord
	for i := firstRoomWord - 1; i >= 0; i-- {
		t := strings.TrimFunc(line.Words[i].Text, func(r rune) bool { return !isAlnum(r) })
		if len(t) == 1 && t[0] >= '1' && t[0] <= '9' {
			count = int(t[0] - '0')
			nameEnd = i
			break
		}
	}

	var rawName []string
	for _, w := range line.Words[:nameEnd] {
		rawName = append(rawName, w.Text)
	}
	nameTokens := cleanNameTokens(rawName)
	if !plausibleName(nameTokens) {
		return PCAAssignment{}, false
	}

	return PCAAssignment{
		Name:  strings.Join(nameTokens, " "),
		Count: count,
		Rooms: rooms,
	}, true
}

func pcaKey(p PCAAssignment) string {
	rooms := make([]string, len(p.Rooms))
	copy(rooms, p.Rooms)
	sort.Strings(rooms)
	return p.Name + "|" + strings.Join(rooms, ",")
}

// splitAlnumRuns splits a token into its maximal alphanumeric runs.
func splitAlnumRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if isAlnum(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}
