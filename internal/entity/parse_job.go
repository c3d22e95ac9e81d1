package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParseJob represents one extraction run over a source file, for data
// transfer between layers.
type ParseJob struct {
	ID           uuid.UUID  `json:"id"`
	SourcePath   string     `json:"source_path"`
	SourceHash   string     `json:"source_hash"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	Method       *string    `json:"method,omitempty"`
	Language     *string    `json:"language,omitempty"`
	Pages        *int       `json:"pages,omitempty"`
	Confidence   *float32   `json:"confidence,omitempty"`
	Warnings     []string   `json:"warnings,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
