package constants

// CareLevel is the canonical level-of-care label attached to a room.
type CareLevel string

// Stable values (store these exact strings in DB and JSON payloads).
const (
	CareTele CareLevel = "Tele" // telemetry monitoring
	CareMS   CareLevel = "MS"   // med-surg
)

// NoteTags holds the canonical acuity note tags the detail extractor emits.
// Order matters: it is the match order and the output order of first match.
var NoteTags = []string{
	"ISO",
	"SITTER",
	"BG",
	"NIH",
	"ADMIT",
	"DRIP",
	"Q2",
	"HEAVY",
	"TF",
	"TELE",
	"MS",
}
