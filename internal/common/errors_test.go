package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := NewAppError("JOB_NOT_FOUND", "abc", ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "JOB_NOT_FOUND")
	assert.Contains(t, err.Error(), "abc")
}

func TestWrapError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := WrapError(cause, "open db")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "open db")

	assert.NoError(t, WrapError(nil, "never happened"))
}
