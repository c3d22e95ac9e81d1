package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/entity"
)

type RosterRepository interface {
	// Upsert stores the validated roster payload keyed by job: re-running a
	// job replaces its roster instead of duplicating it.
	Upsert(ctx context.Context, rec *entity.RosterRecord) (*entity.RosterRecord, error)
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.RosterRecord, error)
	ListByUnitAndDate(ctx context.Context, unitLabel, shiftDate string) ([]*entity.RosterRecord, error)
}

type rosterRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRosterRepository(pool *pgxpool.Pool, log *slog.Logger) RosterRepository {
	return &rosterRepo{pool: pool, log: log}
}

func (r *rosterRepo) Upsert(ctx context.Context, rec *entity.RosterRecord) (*entity.RosterRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO rosters (id, job_id, unit_label, shift_date, outcome, needs_review, payload)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (job_id) DO UPDATE SET
		   unit_label = EXCLUDED.unit_label,
		   shift_date = EXCLUDED.shift_date,
		   outcome = EXCLUDED.outcome,
		   needs_review = EXCLUDED.needs_review,
		   payload = EXCLUDED.payload,
		   updated_at = now()
		 RETURNING id, created_at, updated_at`,
		rec.ID, rec.JobID, rec.UnitLabel, rec.ShiftDate, rec.Outcome, rec.NeedsReview, json.RawMessage(rec.Payload))
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		r.log.Error("roster upsert failed", "job_id", rec.JobID, "err", err)
		return nil, err
	}
	r.log.Info("roster stored", "roster_id", rec.ID, "job_id", rec.JobID,
		"outcome", rec.Outcome, "needs_review", rec.NeedsReview)
	return rec, nil
}

func (r *rosterRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.RosterRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, job_id, unit_label, shift_date, outcome, needs_review, payload, created_at, updated_at
		 FROM rosters WHERE job_id = $1`, jobID)

	var rec entity.RosterRecord
	err := row.Scan(&rec.ID, &rec.JobID, &rec.UnitLabel, &rec.ShiftDate, &rec.Outcome,
		&rec.NeedsReview, &rec.Payload, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NewAppError("ROSTER_NOT_FOUND", jobID.String(), common.ErrNotFound)
	}
	if err != nil {
		r.log.Error("roster get failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return &rec, nil
}

func (r *rosterRepo) ListByUnitAndDate(ctx context.Context, unitLabel, shiftDate string) ([]*entity.RosterRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, job_id, unit_label, shift_date, outcome, needs_review, payload, created_at, updated_at
		 FROM rosters WHERE unit_label = $1 AND shift_date = $2
		 ORDER BY updated_at DESC`, unitLabel, shiftDate)
	if err != nil {
		r.log.Error("roster list failed", "unit", unitLabel, "date", shiftDate, "err", err)
		return nil, err
	}
	defer rows.Close()

	var out []*entity.RosterRecord
	for rows.Next() {
		var rec entity.RosterRecord
		if err := rows.Scan(&rec.ID, &rec.JobID, &rec.UnitLabel, &rec.ShiftDate, &rec.Outcome,
			&rec.NeedsReview, &rec.Payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
