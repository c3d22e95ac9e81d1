package roster

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// reParenCode matches a parenthesized short code next to a name, e.g. "(EDG)".
var reParenCode = regexp.MustCompile(`^\(([A-Za-z0-9]{1,5})\)$`)

// FindRNAnchors detects one anchor per RN in the lower region of the page.
// Candidate name tokens (alphabetic, not room codes, left of the room lists)
// are clustered by x-center into columns, then by y into one name row per
// RN. The result is sorted by centroid x ascending and capped at
// cfg.MaxAnchors — a sanity bound on plausible staffing, not a domain limit.
func FindRNAnchors(words []Word, width, height float64, cfg LayoutConfig) []NameAnchor {
	top := cfg.RNTopFraction * height
	bottom := cfg.RNBottomFraction * height
	leftBound := cfg.NameLeftFraction * width

	var cands []Word
	for _, w := range words {
		if w.Y0 < top || w.Y0 > bottom {
			continue
		}
		if w.CenterX() > leftBound {
			continue
		}
		t := strings.TrimSpace(w.Text)
		if t == "" {
			continue
		}
		// Room codes and bare numbers are never name material.
		if norm := cfg.NormalizeToken(t); cfg.ValidRoom(norm) || allDigits(norm) {
			continue
		}
		if len(alphaOnly(t)) == 0 && !reParenCode.MatchString(t) {
			continue
		}
		cands = append(cands, w)
	}
	if len(cands) == 0 {
		return nil
	}

	xTol := cfg.AnchorXTolFraction * width
	columns := clusterByCenter(cands, xTol, Word.CenterX)

	var anchors []NameAnchor
	seen := make(map[[2]int]struct{})
	for _, col := range columns {
		for _, row := range clusterByCenter(col, cfg.AnchorYTolerance, Word.CenterY) {
			a, ok := anchorFromCluster(row)
			if !ok {
				continue
			}
			key := [2]int{int(math.Round(a.X)), int(math.Round(a.Y))}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			anchors = append(anchors, a)
		}
	}

	sort.Slice(anchors, func(i, j int) bool { return anchors[i].X < anchors[j].X })
	if len(anchors) > cfg.MaxAnchors {
		anchors = anchors[:cfg.MaxAnchors]
	}
	return anchors
}

// clusterByCenter greedily buckets words along one axis: a word joins the
// first cluster whose running-mean center is within tol, else starts a new
// cluster. Words are visited in ascending axis order, so clusters come out
// ordered too.
func clusterByCenter(words []Word, tol float64, axis func(Word) float64) [][]Word {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return axis(sorted[i]) < axis(sorted[j]) })

	type cluster struct {
		words []Word
		sum   float64
	}
	var clusters []*cluster
	for _, w := range sorted {
		v := axis(w)
		var best *cluster
		for _, c := range clusters {
			if math.Abs(v-c.sum/float64(len(c.words))) <= tol {
				best = c
				break
			}
		}
		if best == nil {
			clusters = append(clusters, &cluster{words: []Word{w}, sum: v})
			continue
		}
		best.words = append(best.words, w)
		best.sum += v
	}

	out := make([][]Word, len(clusters))
	for i, c := range clusters {
		out[i] = c.words
	}
	return out
}

// anchorFromCluster builds a NameAnchor from one name-row cluster. Tokens are
// ordered left to right; a parenthesized short code is appended after the
// alphabetic name. The plausibility filter applies to the alphabetic portion
// only, so "(EDG)" alone can never become an anchor.
func anchorFromCluster(row []Word) (NameAnchor, bool) {
	sort.Slice(row, func(i, j int) bool { return row[i].X0 < row[j].X0 })

	var alphaTokens []string
	code := ""
	var sumX, sumY float64
	for _, w := range row {
		t := strings.TrimSpace(w.Text)
		if m := reParenCode.FindStringSubmatch(t); m != nil && code == "" {
			code = strings.ToUpper(m[1])
		} else if a := alphaOnly(t); len(a) >= 2 && !isNameStopWord(a) {
			alphaTokens = append(alphaTokens, a)
		}
		sumX += w.CenterX()
		sumY += w.CenterY()
	}
	if !plausibleName(alphaTokens) {
		return NameAnchor{}, false
	}

	name := strings.Join(alphaTokens, " ")
	if code != "" {
		name += " (" + code + ")"
	}
	n := float64(len(row))
	return NameAnchor{Name: name, X: sumX / n, Y: sumY / n}, true
}
