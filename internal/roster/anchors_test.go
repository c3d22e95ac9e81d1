package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1000.0
	testHeight = 1000.0
)

// nameWord places a token inside the RN name region (lower-left quadrant
// under the default layout priors).
func nameWord(text string, x0, y0 float64) Word {
	return Word{Text: text, X0: x0, Y0: y0, X1: x0 + 40, Y1: y0 + 14}
}

func TestFindRNAnchorsTwoColumns(t *testing.T) {
	cfg := DefaultLayoutConfig()
	// One RN's name tokens sit in the same grid column (wrapped under each
	// other), so they share an x-center within the 4%-of-width tolerance.
	words := []Word{
		nameWord("Kim", 100, 500),
		nameWord("Lee", 108, 514),
		nameWord("Jones", 350, 505),
		// Room tokens must not become anchors.
		nameWord("214", 100, 560),
	}

	anchors := FindRNAnchors(words, testWidth, testHeight, cfg)
	require.Len(t, anchors, 2)
	assert.Equal(t, "Kim Lee", anchors[0].Name)
	assert.Equal(t, "Jones", anchors[1].Name)
	assert.Less(t, anchors[0].X, anchors[1].X)
}

func TestFindRNAnchorsParenCode(t *testing.T) {
	cfg := DefaultLayoutConfig()
	words := []Word{
		nameWord("Garcia", 100, 500),
		nameWord("(EDG)", 106, 515),
	}

	anchors := FindRNAnchors(words, testWidth, testHeight, cfg)
	require.Len(t, anchors, 1)
	assert.Equal(t, "Garcia (EDG)", anchors[0].Name)
}

func TestFindRNAnchorsPlausibility(t *testing.T) {
	cfg := DefaultLayoutConfig()

	// Short single tokens and stop words are OCR noise, not names.
	rejected := [][]Word{
		{nameWord("AB", 100, 500)},
		{nameWord("RN", 100, 500)},
		{nameWord("Tele", 100, 500)},
		{nameWord("(EDG)", 100, 500)}, // code with no alphabetic name
	}
	for _, words := range rejected {
		assert.Empty(t, FindRNAnchors(words, testWidth, testHeight, cfg), "words %v should not anchor", words)
	}

	accepted := FindRNAnchors([]Word{nameWord("Jones", 100, 500)}, testWidth, testHeight, cfg)
	assert.Len(t, accepted, 1)
}

func TestFindRNAnchorsRegionBounds(t *testing.T) {
	cfg := DefaultLayoutConfig()
	words := []Word{
		nameWord("Jones", 100, 100),  // above the RN region
		nameWord("Smith", 100, 980),  // below the RN region
		nameWord("Miller", 600, 500), // right of the name region
	}
	assert.Empty(t, FindRNAnchors(words, testWidth, testHeight, cfg))
}

func TestFindRNAnchorsCap(t *testing.T) {
	cfg := DefaultLayoutConfig()
	cfg.MaxAnchors = 2

	words := []Word{
		nameWord("Jones", 50, 500),
		nameWord("Smith", 200, 500),
		nameWord("Garcia", 350, 500),
	}
	anchors := FindRNAnchors(words, testWidth, testHeight, cfg)
	require.Len(t, anchors, 2)
	// Leftmost anchors survive the cap, in order.
	assert.Equal(t, "Jones", anchors[0].Name)
	assert.Equal(t, "Smith", anchors[1].Name)
}

func TestFindRNAnchorsSeparateRowsInColumn(t *testing.T) {
	cfg := DefaultLayoutConfig()
	// Two RNs stacked in the same column: y clustering must split them.
	words := []Word{
		nameWord("Jones", 100, 500),
		nameWord("Smith", 102, 600),
	}
	anchors := FindRNAnchors(words, testWidth, testHeight, cfg)
	require.Len(t, anchors, 2)
}
