package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chargeboard/rosterscan/internal/contract"
	"github.com/chargeboard/rosterscan/internal/entity"
	"github.com/chargeboard/rosterscan/internal/ocr"
	"github.com/chargeboard/rosterscan/internal/repository"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	// MinRoomsForReview: a full-geometry parse that recovered fewer rooms
	// than this is flagged for review. Default 4.
	MinRoomsForReview int
	// MinConfidence: OCR confidence below this flags the roster for review.
	// Default 0.60.
	MinConfidence float32
}

type ParseStage struct {
	Logger      *slog.Logger
	Cfg         Config
	JobsRepo    repository.ParseJobRepository
	RostersRepo repository.RosterRepository
	Parser      *roster.Parser
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ParseJobRepository,
	rosters repository.RosterRepository,
	parser *roster.Parser,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinRoomsForReview <= 0 {
		cfg.MinRoomsForReview = 4
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	if parser == nil {
		parser = roster.NewParser(roster.LayoutConfig{})
	}
	return &ParseStage{
		Logger:      logger,
		Cfg:         cfg,
		JobsRepo:    jobs,
		RostersRepo: rosters,
		Parser:      parser,
	}
}

// Run executes the roster parse stage for an OCR-complete job. The parse
// itself never fails; only contract validation or persistence can.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID, res ocr.ExtractionResult) (uuid.UUID, error) {
	var parsed roster.ParsedRoster
	if len(res.Doc.Words) > 0 {
		parsed = p.Parser.ParseDocument(res.Doc)
	} else {
		parsed = p.Parser.ParseText(res.Doc.Text)
	}

	needsReview := parsed.Outcome != roster.OutcomeFull
	if n := roomCount(parsed); n < p.Cfg.MinRoomsForReview {
		needsReview = true
	}
	if res.Confidence > 0 && res.Confidence < p.Cfg.MinConfidence {
		needsReview = true
	}

	payload, err := contract.ValidateRoster(parsed, p.Parser.Config().RoomPattern.String())
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return uuid.Nil, fmt.Errorf("roster contract: %w", err)
	}

	rec := &entity.RosterRecord{
		JobID:       jobID,
		UnitLabel:   parsed.Meta.UnitLabel,
		ShiftDate:   parsed.Meta.DateLabel,
		Outcome:     string(parsed.Outcome),
		NeedsReview: needsReview,
		Payload:     payload,
	}
	rec, err = p.RostersRepo.Upsert(ctx, rec)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return uuid.Nil, fmt.Errorf("store roster: %w", err)
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, jobID); err != nil {
		return rec.ID, err
	}

	p.Logger.Info("roster parsed",
		"job_id", jobID, "roster_id", rec.ID,
		"outcome", parsed.Outcome,
		"rns", len(parsed.RNs), "pcas", len(parsed.PCAs),
		"rooms", roomCount(parsed),
		"needs_review", needsReview,
	)
	return rec.ID, nil
}

func roomCount(r roster.ParsedRoster) int {
	n := 0
	for _, rn := range r.RNs {
		n += len(rn.Rooms)
	}
	return n
}
