package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/ocr"
	"github.com/chargeboard/rosterscan/internal/repository"
)

// ImageConfidenceThreshold flags low-confidence image OCR for review.
const ImageConfidenceThreshold = 0.6

// TextExtractor lets tests stub the OCR engine.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

type OCRStage struct {
	JobsRepo  repository.ParseJobRepository
	Extractor TextExtractor
	Logger    *slog.Logger
}

func NewOCRStage(jobs repository.ParseJobRepository, tx TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{JobsRepo: jobs, Extractor: tx, Logger: logger}
}

// Run starts a parse_job for the file, runs extraction, and persists the
// extraction summary. The roster parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, path string) (uuid.UUID, ocr.ExtractionResult, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}

	hash, err := hashFile(path)
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("hash file: %w", err)
	}

	job, err := p.JobsRepo.Start(ctx, path, hash, format)
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, err
	}
	// downstream exec logging picks the job id up from the context
	ctx = common.WithJobID(ctx, job.ID.String())
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, ocr.ExtractionResult{}, err
	}

	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if format == constants.IMAGE && res.Confidence > 0 && res.Confidence < ImageConfidenceThreshold {
		p.Logger.Warn("image ocr confidence low",
			"path", path, "job_id", job.ID, "conf", res.Confidence)
	}

	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID,
		res.Method, res.Language, res.Pages, res.Confidence, res.Warnings); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
