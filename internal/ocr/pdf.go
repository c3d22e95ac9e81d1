package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chargeboard/rosterscan/constants"
	"github.com/chargeboard/rosterscan/internal/roster"
)

// extractPDF tries the embedded text layer first. Shift sheets are almost
// always scans or photos printed to PDF, so the threshold is low: anything
// under MinTextChars falls through to rasterized OCR.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err == nil {
		norm := Normalize(text)
		if len(norm) >= e.cfg.MinTextChars {
			return ExtractionResult{
				Doc:        roster.Document{Text: norm},
				Pages:      pages,
				SourceType: constants.PDF,
				Method:     "pdf-text",
				Language:   e.cfg.TesseractLang,
				Warnings:   warns,
				Confidence: heuristicConfidence(norm),
			}, nil
		}
		warns = append(warns, fmt.Sprintf("embedded text too short (%d chars), falling back to OCR", len(norm)))
	} else {
		warns = append(warns, fmt.Sprintf("pdftotext failed: %v", err))
	}

	doc, conf, ocrWarns, pages, err := e.pdfToOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, err
	}
	return ExtractionResult{
		Doc:        doc,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
		Confidence: conf,
	}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (roster.Document, float32, []string, int, error) {
	tmpDir, err := os.MkdirTemp("", "rs-pp-*")
	if err != nil {
		return roster.Document{}, 0, nil, 0, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return roster.Document{}, 0, []string{string(errb)}, 0, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return roster.Document{}, 0, []string{"pdftoppm produced no images"}, 0, fmt.Errorf("no pages rendered")
	}

	var pages []roster.Document
	var confs []float32
	var warns []string
	for _, img := range matches {
		doc, conf, w, err := e.tesseractTSV(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		pages = append(pages, doc)
		confs = append(confs, conf)
	}
	if len(pages) == 0 {
		return roster.Document{}, 0, warns, len(matches), fmt.Errorf("ocr produced no pages")
	}

	merged, conf := mergePages(pages, confs)
	return merged, conf, warns, len(matches), nil
}

// mergePages stacks page documents vertically into a single coordinate
// space, offsetting each page's words by the accumulated height. Confidence
// is the word-count-weighted mean.
func mergePages(pages []roster.Document, confs []float32) (roster.Document, float32) {
	if len(pages) == 1 {
		return pages[0], confs[0]
	}

	var out roster.Document
	var yOff float64
	var confSum float64
	var wordTotal int
	var b strings.Builder

	for i, p := range pages {
		if p.Width > out.Width {
			out.Width = p.Width
		}
		for _, w := range p.Words {
			w.Y0 += yOff
			w.Y1 += yOff
			out.Words = append(out.Words, w)
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(p.Text)
		yOff += p.Height
		confSum += float64(confs[i]) * float64(len(p.Words))
		wordTotal += len(p.Words)
	}
	out.Height = yOff
	out.Text = b.String()

	var conf float32
	if wordTotal > 0 {
		conf = float32(confSum / float64(wordTotal))
	}
	return out, conf
}
