package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(text string, x0, y0 float64) Word {
	return Word{Text: text, X0: x0, Y0: y0, X1: x0 + 30, Y1: y0 + 12}
}

func TestGroupWordsIntoLines(t *testing.T) {
	words := []Word{
		word("Lee", 200, 102),
		word("Kim", 100, 100),
		word("201", 100, 140),
		word("203", 180, 145),
	}

	lines := GroupWordsIntoLines(words, 14)
	require.Len(t, lines, 2)

	assert.Equal(t, "Kim Lee", lines[0].Text)
	assert.Equal(t, "201 203", lines[1].Text)
	assert.Equal(t, 100.0, lines[0].Y)
}

func TestGroupWordsIntoLinesRepresentativeY(t *testing.T) {
	// 100 and 113 share a line (within 14 of the representative 100), but
	// 116 starts a new line even though it is within 14 of 113: tolerance
	// is measured against the line's first word, not its last.
	words := []Word{
		word("a", 0, 100),
		word("b", 50, 113),
		word("c", 100, 116),
	}

	lines := GroupWordsIntoLines(words, 14)
	require.Len(t, lines, 2)
	assert.Equal(t, "a b", lines[0].Text)
	assert.Equal(t, "c", lines[1].Text)
}

func TestGroupWordsIntoLinesEmpty(t *testing.T) {
	assert.Nil(t, GroupWordsIntoLines(nil, 14))
}
