package roster

import (
	"sort"
	"strings"
)

// GroupWordsIntoLines clusters words into horizontal text lines. Words are
// processed in (y0, x0) order; a word starts a new line when its y0 differs
// from the line's representative y0 (the first word admitted) by more than
// yTolerance. Within a line, words are re-sorted by x0 and their texts joined
// with single spaces. Deterministic for a given input.
func GroupWordsIntoLines(words []Word, yTolerance float64) []Line {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y0 != sorted[j].Y0 {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines []Line
	cur := Line{Y: sorted[0].Y0, Words: []Word{sorted[0]}}
	for _, w := range sorted[1:] {
		if w.Y0-cur.Y > yTolerance {
			lines = append(lines, finishLine(cur))
			cur = Line{Y: w.Y0, Words: []Word{w}}
			continue
		}
		cur.Words = append(cur.Words, w)
	}
	lines = append(lines, finishLine(cur))
	return lines
}

func finishLine(l Line) Line {
	sort.Slice(l.Words, func(i, j int) bool { return l.Words[i].X0 < l.Words[j].X0 })
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if t := strings.TrimSpace(w.Text); t != "" {
			parts = append(parts, t)
		}
	}
	l.Text = strings.Join(parts, " ")
	return l
}
