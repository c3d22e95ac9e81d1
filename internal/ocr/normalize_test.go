package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "crlf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "tabs and runs of spaces", in: "a\t\tb   c", want: "a b c"},
		{name: "blank line collapse", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "grid rule noise", in: "a\n-----\nb", want: "a\n\nb"},
		{name: "trailing spaces", in: "a   \nb", want: "a\nb"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestHeuristicConfidence(t *testing.T) {
	sheet := "Unit: 2E 10/14/25 Charge Nurse: Smith\n" +
		"Jones 201 203 205B\nGarcia 214 216 218 Tele"
	junk := "lorem ipsum"

	assert.Greater(t, heuristicConfidence(sheet), heuristicConfidence(junk))
	assert.LessOrEqual(t, heuristicConfidence(sheet), float32(1.0))
}
