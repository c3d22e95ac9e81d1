package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/entity"
)

type ParseJobRepository interface {
	Start(ctx context.Context, sourcePath, sourceHash, format string) (*entity.ParseJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, method, language string, pages int, confidence float32, warnings []string) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error)
}

type parseJobRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewParseJobRepository(pool *pgxpool.Pool, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{pool: pool, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, sourcePath, sourceHash, format string) (*entity.ParseJob, error) {
	job := &entity.ParseJob{
		ID:         uuid.New(),
		SourcePath: sourcePath,
		SourceHash: sourceHash,
		Format:     format,
		Status:     string(constants.JobStatusQueued),
		StartedAt:  time.Now(),
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO parse_jobs (id, source_path, source_hash, format, status, started_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		job.ID, job.SourcePath, job.SourceHash, job.Format, job.Status, job.StartedAt)
	if err != nil {
		r.log.Error("parse_job start failed", "source_path", sourcePath, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "source_path", sourcePath, "format", format)
	return job, nil
}

func (r *parseJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE parse_jobs SET status = $2 WHERE id = $1`,
		jobID, string(constants.JobStatusRunning))
	if err != nil {
		r.log.Error("parse_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *parseJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, method, language string, pages int, confidence float32, warnings []string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE parse_jobs
		 SET status = $2, method = $3, language = $4, pages = $5, confidence = $6, warnings = $7
		 WHERE id = $1`,
		jobID, string(constants.JobStatusOCROK), method, language, pages, confidence, warnings)
	if err != nil {
		r.log.Error("parse_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished ocr", "job_id", jobID, "method", method, "pages", pages)
	return nil
}

func (r *parseJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE parse_jobs SET status = $2, finished_at = now() WHERE id = $1`,
		jobID, string(constants.JobStatusParseOK))
	if err != nil {
		r.log.Error("parse_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished", "job_id", jobID)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE parse_jobs SET status = $2, error_message = $3, finished_at = now() WHERE id = $1`,
		jobID, string(constants.JobStatusFailed), message)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, source_path, source_hash, format, status, method, language,
		        pages, confidence, warnings, error_message, started_at, finished_at
		 FROM parse_jobs WHERE id = $1`, jobID)

	var job entity.ParseJob
	err := row.Scan(&job.ID, &job.SourcePath, &job.SourceHash, &job.Format, &job.Status,
		&job.Method, &job.Language, &job.Pages, &job.Confidence, &job.Warnings,
		&job.ErrorMessage, &job.StartedAt, &job.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NewAppError("JOB_NOT_FOUND", jobID.String(), common.ErrNotFound)
	}
	if err != nil {
		r.log.Error("parse_job get failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return &job, nil
}
