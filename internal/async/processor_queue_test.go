package async

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/common"
	"github.com/chargeboard/rosterscan/internal/entity"
	"github.com/chargeboard/rosterscan/internal/ocr"
	processor "github.com/chargeboard/rosterscan/internal/pipeline"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// stubJobs is a minimal, concurrency-safe job store for queue tests.
type stubJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.ParseJob
}

func newStubJobs() *stubJobs {
	return &stubJobs{jobs: make(map[uuid.UUID]*entity.ParseJob)}
}

func (s *stubJobs) Start(_ context.Context, sourcePath, sourceHash, format string) (*entity.ParseJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := &entity.ParseJob{ID: uuid.New(), SourcePath: sourcePath, SourceHash: sourceHash,
		Format: format, Status: string(constants.JobStatusQueued)}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobs) setStatus(id uuid.UUID, st constants.JobStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("no job %s", id)
	}
	job.Status = string(st)
	return nil
}

func (s *stubJobs) MarkRunning(_ context.Context, id uuid.UUID) error {
	return s.setStatus(id, constants.JobStatusRunning)
}

func (s *stubJobs) FinishOCRSuccess(_ context.Context, id uuid.UUID, _, _ string, _ int, _ float32, _ []string) error {
	return s.setStatus(id, constants.JobStatusOCROK)
}

func (s *stubJobs) FinishParseSuccess(_ context.Context, id uuid.UUID) error {
	return s.setStatus(id, constants.JobStatusParseOK)
}

func (s *stubJobs) FinishFailure(_ context.Context, id uuid.UUID, _ string) error {
	return s.setStatus(id, constants.JobStatusFailed)
}

func (s *stubJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("no job %s", id)
	}
	return job, nil
}

type stubRosters struct {
	mu sync.Mutex
	n  int
}

func (s *stubRosters) Upsert(_ context.Context, rec *entity.RosterRecord) (*entity.RosterRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return rec, nil
}

func (s *stubRosters) GetByJobID(_ context.Context, _ uuid.UUID) (*entity.RosterRecord, error) {
	return nil, fmt.Errorf("not stored")
}

func (s *stubRosters) ListByUnitAndDate(_ context.Context, _, _ string) ([]*entity.RosterRecord, error) {
	return nil, nil
}

// pathExtractor fails for paths containing "bad" and records the request ids
// it observed on the worker contexts.
type pathExtractor struct {
	mu       sync.Mutex
	traceIDs []string
}

func (p *pathExtractor) Extract(ctx context.Context, path string) (ocr.ExtractionResult, error) {
	p.mu.Lock()
	p.traceIDs = append(p.traceIDs, common.RequestIDFromContext(ctx))
	p.mu.Unlock()
	if strings.Contains(path, "bad") {
		return ocr.ExtractionResult{}, fmt.Errorf("unreadable scan")
	}
	return ocr.ExtractionResult{
		Doc:        roster.Document{Text: "Charge Nurse: Smith"},
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Confidence: 0.9,
	}, nil
}

func TestProcessorQueueDrainsAndCounts(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
		return path
	}

	jobs := newStubJobs()
	ext := &pathExtractor{}
	proc := processor.NewProcessor(nil,
		processor.NewOCRStage(jobs, ext, nil),
		processor.NewParseStage(nil, processor.Config{}, jobs, &stubRosters{}, nil))

	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithProcessTimeout(5*time.Second))

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, Job{Path: write("a.png"), SubmittedAt: time.Now(), TraceID: "t-1"}))
	require.NoError(t, q.Enqueue(ctx, Job{Path: write("b.png"), SubmittedAt: time.Now(), TraceID: "t-2"}))
	require.NoError(t, q.Enqueue(ctx, Job{Path: write("bad.png"), SubmittedAt: time.Now(), TraceID: "t-3"}))
	q.Shutdown(ctx)

	processed, failed := q.Stats()
	assert.Equal(t, int64(2), processed)
	assert.Equal(t, int64(1), failed)

	// every worker context carried its job's trace id
	assert.ElementsMatch(t, []string{"t-1", "t-2", "t-3"}, ext.traceIDs)
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	jobs := newStubJobs()
	proc := processor.NewProcessor(nil,
		processor.NewOCRStage(jobs, &pathExtractor{}, nil),
		processor.NewParseStage(nil, processor.Config{}, jobs, &stubRosters{}, nil))

	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	// dropped with a warning, never a panic on the closed channel
	assert.NoError(t, q.Enqueue(context.Background(), Job{Path: "late.png"}))
}
