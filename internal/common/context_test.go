package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "trace-123")
	assert.Equal(t, "trace-123", RequestIDFromContext(ctx))
}

func TestJobIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", JobIDFromContext(ctx))

	ctx = WithJobID(ctx, "job-abc")
	assert.Equal(t, "job-abc", JobIDFromContext(ctx))

	// the two keys must not collide
	assert.Equal(t, "", RequestIDFromContext(ctx))
}
