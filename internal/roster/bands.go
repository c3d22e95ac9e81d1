package roster

// ComputeBandRanges converts anchors (sorted by centroid x ascending) into
// contiguous horizontal bands. Band i runs from the midpoint between anchors
// i-1 and i (or 0 for the first) to the midpoint between anchors i and i+1
// (or width for the last), so the bands partition [0, width) with no gaps or
// overlaps. Pure function of the anchor centroids.
func ComputeBandRanges(anchors []NameAnchor, width float64) []Band {
	bands := make([]Band, len(anchors))
	for i, a := range anchors {
		left := 0.0
		if i > 0 {
			left = (anchors[i-1].X + a.X) / 2
		}
		right := width
		if i < len(anchors)-1 {
			right = (a.X + anchors[i+1].X) / 2
		}
		bands[i] = Band{Anchor: a, Left: left, Right: right}
	}
	return bands
}
