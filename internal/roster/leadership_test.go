package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadership(t *testing.T) {
	meta := ParseLeadership("Charge Nurse: Smith Clinical Mentor: Lee CTA: Jones")
	assert.Equal(t, "Smith", meta.ChargeNurse)
	assert.Equal(t, "Lee", meta.ResourceRN)
	assert.Equal(t, "Jones", meta.CTA)
}

func TestParseLeadershipSeparatorVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "colon", text: "Charge Nurse: Smith", want: "Smith"},
		{name: "dash", text: "Charge Nurse - Smith", want: "Smith"},
		{name: "no separator", text: "Charge Nurse Smith", want: "Smith"},
		{name: "squeezed label", text: "ChargeNurse: Smith", want: "Smith"},
		{name: "two word name", text: "Charge Nurse: Mary Smith", want: "Mary Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLeadership(tt.text).ChargeNurse)
		})
	}
}

func TestParseLeadershipMissingLabels(t *testing.T) {
	meta := ParseLeadership("just some unrelated text")
	assert.Equal(t, "", meta.ChargeNurse)
	assert.Equal(t, "", meta.ResourceRN)
	assert.Equal(t, "", meta.CTA)
}

func TestParseLeadershipMentorAlone(t *testing.T) {
	meta := ParseLeadership("Mentor: Lee")
	assert.Equal(t, "Lee", meta.ResourceRN)
}

func TestParseLeadershipUnitAndDate(t *testing.T) {
	meta := ParseLeadership("Unit: 2E Night Shift 10/14/25 Charge Nurse: Smith")
	assert.Equal(t, "2E", meta.UnitLabel)
	assert.Equal(t, "10/14/25", meta.DateLabel)
}
