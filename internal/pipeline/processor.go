package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chargeboard/rosterscan/internal/repository"
)

// Processor coordinates OCR (text + geometry extract) then roster parse.
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessFile runs extraction for a source file (creating/advancing
// parse_job), then parses the roster and upserts it. Returns the jobID
// started by the OCR stage.
func (p *Processor) ProcessFile(ctx context.Context, path string) (uuid.UUID, error) {
	jobID, res, err := p.OCR.Run(ctx, path)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "path", path, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.ocr.ok",
		"path", path,
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)

	if _, err := p.Parse.Run(ctx, jobID, res); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}

// FailureDetail renders a one-line summary of a failed job for batch
// reporting: final status plus the recorded error message when one exists.
func FailureDetail(ctx context.Context, jobs repository.ParseJobRepository, jobID uuid.UUID) string {
	if jobID == uuid.Nil {
		return "job was not created"
	}
	job, err := jobs.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Sprintf("job %s: %v", jobID, err)
	}
	detail := job.Status
	if job.ErrorMessage != nil && *job.ErrorMessage != "" {
		detail += ": " + *job.ErrorMessage
	}
	return fmt.Sprintf("job %s %s", jobID, detail)
}
