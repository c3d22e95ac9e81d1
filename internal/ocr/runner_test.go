package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("x", 20)
	got := truncate(long, 10)
	assert.True(t, strings.HasPrefix(got, "xxxxxxxxxx"))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
}

func TestNewExecRunnerDefaultsLogger(t *testing.T) {
	r := newExecRunner(nil)
	assert.NotNil(t, r.log)
}
