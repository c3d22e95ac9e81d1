package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RosterRecord represents a persisted roster for data transfer between
// layers. Payload holds the contract-validated JSON document.
type RosterRecord struct {
	ID          uuid.UUID       `json:"id"`
	JobID       uuid.UUID       `json:"job_id"`
	UnitLabel   string          `json:"unit_label"`
	ShiftDate   string          `json:"shift_date"`
	Outcome     string          `json:"outcome"`
	NeedsReview bool            `json:"needs_review"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
