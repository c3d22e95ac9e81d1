package ocr

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner answers each binary with a canned response.
type stubRunner struct {
	stdout map[string][]byte
	errs   map[string]error
	calls  []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	if err, ok := s.errs[name]; ok {
		return nil, []byte("boom"), err
	}
	return s.stdout[name], nil, nil
}

func TestExtractImageViaStub(t *testing.T) {
	e := NewExtractor(Config{PSM: 6}, nil)
	stub := &stubRunner{stdout: map[string][]byte{"tesseract": sampleTSV()}}
	e.runner = stub

	res, err := e.Extract(context.Background(), "sheet.png")
	require.NoError(t, err)

	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, "IMAGE", res.SourceType)
	assert.Equal(t, 1, res.Pages)
	assert.Len(t, res.Doc.Words, 4)
	assert.Equal(t, 1000.0, res.Doc.Width)
	assert.Greater(t, res.Confidence, float32(0))

	// tsv mode and psm must reach the binary
	require.Len(t, stub.calls, 1)
	assert.Contains(t, stub.calls[0], "--psm 6")
	assert.True(t, strings.HasSuffix(stub.calls[0], " tsv"))
}

func TestExtractPDFEmbeddedText(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	text := "Unit: 2E Charge Nurse: Smith\n201 203 205B 214 216 218 220"
	e.runner = &stubRunner{stdout: map[string][]byte{"pdftotext": []byte(text)}}

	res, err := e.Extract(context.Background(), "sheet.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Empty(t, res.Doc.Words)
	assert.Contains(t, res.Doc.Text, "Charge Nurse")
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	// Embedded text too short; pdftoppm renders nothing in this stub, so the
	// fallback surfaces its own failure with the warnings intact.
	e.runner = &stubRunner{stdout: map[string][]byte{"pdftotext": []byte("x")}}

	res, err := e.Extract(context.Background(), "sheet.pdf")
	require.Error(t, err)
	assert.Equal(t, "PDF", res.SourceType)
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "falling back to OCR") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", res.Warnings)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "sheet.docx")
	assert.Error(t, err)
}

func TestExtractHEICRequiresConverter(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &stubRunner{}

	_, err := e.Extract(context.Background(), "sheet.heic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HeicConverter")
}

func TestExtractImageTesseractFailure(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &stubRunner{errs: map[string]error{"tesseract": fmt.Errorf("exit status 1")}}

	res, err := e.Extract(context.Background(), "sheet.png")
	require.Error(t, err)
	assert.Equal(t, []string{"boom"}, res.Warnings)
}
