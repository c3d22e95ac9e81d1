package roster

import "sort"

// CollectRoomTokens scans the lower region of the page for words whose
// normalized text matches the room grammar. Each hit keeps its source word
// for the detail extractor's proximity queries.
func CollectRoomTokens(words []Word, height float64, cfg LayoutConfig) []RoomToken {
	top := cfg.RNTopFraction * height
	bottom := cfg.RNBottomFraction * height

	var tokens []RoomToken
	for _, w := range words {
		if w.Y0 < top || w.Y0 > bottom {
			continue
		}
		code := cfg.NormalizeToken(w.Text)
		if cfg.ValidRoom(code) {
			tokens = append(tokens, RoomToken{Code: code, Word: w})
		}
	}
	return tokens
}

// AssignRoomsToBands buckets each room token into the band whose [left,
// right) range contains the token's x-center. Within a band, duplicate codes
// keep the first occurrence. A token at or past the last band's right edge
// (boundary noise) falls into the last band. Cross-band de-duplication is
// the orchestrator's job: geometric noise may still bucket one physical
// token's duplicates into two bands.
func AssignRoomsToBands(tokens []RoomToken, bands []Band) [][]RoomToken {
	buckets := make([][]RoomToken, len(bands))
	if len(bands) == 0 {
		return buckets
	}

	for _, t := range tokens {
		cx := t.Word.CenterX()
		idx := len(bands) - 1
		for i, b := range bands {
			if cx >= b.Left && cx < b.Right {
				idx = i
				break
			}
		}
		buckets[idx] = append(buckets[idx], t)
	}

	for i, bucket := range buckets {
		seen := make(map[string]struct{}, len(bucket))
		kept := bucket[:0]
		for _, t := range bucket {
			if _, dup := seen[t.Code]; dup {
				continue
			}
			seen[t.Code] = struct{}{}
			kept = append(kept, t)
		}
		sort.Slice(kept, func(a, b int) bool { return kept[a].Code < kept[b].Code })
		buckets[i] = kept
	}
	return buckets
}

// dedupSortedCodes returns the distinct normalized codes of tokens, sorted
// ascending. Used by the no-anchor fallback bucket.
func dedupSortedCodes(tokens []RoomToken) []string {
	seen := make(map[string]struct{}, len(tokens))
	var codes []string
	for _, t := range tokens {
		if _, dup := seen[t.Code]; dup {
			continue
		}
		seen[t.Code] = struct{}{}
		codes = append(codes, t.Code)
	}
	sort.Strings(codes)
	return codes
}
