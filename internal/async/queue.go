package async

import (
	"context"
	"time"
)

// Job is one sheet to push through the pipeline. TraceID is attached to the
// worker's context as the request id so a batch submission can be followed
// through the logs.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
