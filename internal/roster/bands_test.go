package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBandRangesPartition(t *testing.T) {
	tests := []struct {
		name    string
		centers []float64
		width   float64
	}{
		{name: "single anchor", centers: []float64{400}, width: 800},
		{name: "two anchors", centers: []float64{100, 500}, width: 800},
		{name: "five anchors", centers: []float64{90, 210, 388, 540, 770}, width: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchors := make([]NameAnchor, len(tt.centers))
			for i, x := range tt.centers {
				anchors[i] = NameAnchor{Name: "rn", X: x, Y: 500}
			}
			bands := ComputeBandRanges(anchors, tt.width)
			require.Len(t, bands, len(anchors))

			assert.Equal(t, 0.0, bands[0].Left)
			assert.Equal(t, tt.width, bands[len(bands)-1].Right)
			for i := 0; i < len(bands)-1; i++ {
				assert.Equal(t, bands[i].Right, bands[i+1].Left, "bands %d and %d must meet", i, i+1)
			}
		})
	}
}

func TestComputeBandRangesMidpoints(t *testing.T) {
	anchors := []NameAnchor{{X: 100}, {X: 500}}
	bands := ComputeBandRanges(anchors, 800)
	require.Len(t, bands, 2)

	assert.Equal(t, 0.0, bands[0].Left)
	assert.Equal(t, 300.0, bands[0].Right)
	assert.Equal(t, 300.0, bands[1].Left)
	assert.Equal(t, 800.0, bands[1].Right)
}

func TestAssignRoomsToBands(t *testing.T) {
	bands := ComputeBandRanges([]NameAnchor{{X: 100}, {X: 500}}, 800)

	tokens := []RoomToken{
		{Code: "201", Word: Word{X0: 240, X1: 260}}, // center 250 -> band 0
		{Code: "214", Word: Word{X0: 640, X1: 660}}, // center 650 -> band 1
	}
	buckets := AssignRoomsToBands(tokens, bands)
	require.Len(t, buckets, 2)
	require.Len(t, buckets[0], 1)
	require.Len(t, buckets[1], 1)
	assert.Equal(t, "201", buckets[0][0].Code)
	assert.Equal(t, "214", buckets[1][0].Code)
}

func TestAssignRoomsToBandsDedupWithinBand(t *testing.T) {
	bands := ComputeBandRanges([]NameAnchor{{X: 400}}, 800)
	tokens := []RoomToken{
		{Code: "207", Word: Word{X0: 100, X1: 120}},
		{Code: "207", Word: Word{X0: 300, X1: 320}},
		{Code: "203", Word: Word{X0: 200, X1: 220}},
	}
	buckets := AssignRoomsToBands(tokens, bands)
	require.Len(t, buckets[0], 2)
	assert.Equal(t, "203", buckets[0][0].Code)
	assert.Equal(t, "207", buckets[0][1].Code)
}

func TestAssignRoomsToBandsRightEdge(t *testing.T) {
	bands := ComputeBandRanges([]NameAnchor{{X: 100}, {X: 500}}, 800)
	// Token centered exactly at the page edge still lands in the last band.
	tokens := []RoomToken{{Code: "228", Word: Word{X0: 790, X1: 810}}}
	buckets := AssignRoomsToBands(tokens, bands)
	require.Len(t, buckets[1], 1)
	assert.Equal(t, "228", buckets[1][0].Code)
}
