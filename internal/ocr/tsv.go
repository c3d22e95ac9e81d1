package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chargeboard/rosterscan/internal/roster"
)

// tsvRow mirrors the columns tesseract emits in TSV mode:
// level page block par line word left top width height conf text
type tsvRow struct {
	level  int
	left   float64
	top    float64
	width  float64
	height float64
	conf   float64
	block  int
	par    int
	line   int
	text   string
}

const (
	tsvLevelPage = 1
	tsvLevelWord = 5
)

func parseTSVRow(cols []string) (tsvRow, bool) {
	if len(cols) < 12 {
		return tsvRow{}, false
	}
	atoi := func(s string) (int, bool) {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		return v, err == nil
	}
	atof := func(s string) (float64, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v, err == nil
	}

	var r tsvRow
	var ok bool
	if r.level, ok = atoi(cols[0]); !ok {
		return tsvRow{}, false // header line or junk
	}
	if r.block, ok = atoi(cols[2]); !ok {
		return tsvRow{}, false
	}
	if r.par, ok = atoi(cols[3]); !ok {
		return tsvRow{}, false
	}
	if r.line, ok = atoi(cols[4]); !ok {
		return tsvRow{}, false
	}
	if r.left, ok = atof(cols[6]); !ok {
		return tsvRow{}, false
	}
	if r.top, ok = atof(cols[7]); !ok {
		return tsvRow{}, false
	}
	if r.width, ok = atof(cols[8]); !ok {
		return tsvRow{}, false
	}
	if r.height, ok = atof(cols[9]); !ok {
		return tsvRow{}, false
	}
	if r.conf, ok = atof(cols[10]); !ok {
		r.conf = -1
	}
	// text may legitimately contain tabs only if tesseract misbehaves; keep
	// the first remaining column as-is.
	r.text = cols[11]
	return r, true
}

// ParseTSV converts one page of tesseract TSV output into a positioned
// document. The level-1 row carries the page frame; level-5 rows carry words.
// Full text is rebuilt from word order: a space within a line, a newline
// between lines, a blank line between blocks. Returns the mean word
// confidence scaled to 0..1.
func ParseTSV(data []byte) (roster.Document, float32, error) {
	var doc roster.Document
	var sum float64
	var n int

	type lineKey struct{ block, par, line int }
	var b strings.Builder
	var last lineKey
	first := true

	for _, ln := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		row, ok := parseTSVRow(strings.Split(ln, "\t"))
		if !ok {
			continue
		}
		switch row.level {
		case tsvLevelPage:
			if doc.Width == 0 {
				doc.Width = row.width
				doc.Height = row.height
			}
		case tsvLevelWord:
			txt := strings.TrimSpace(row.text)
			if txt == "" {
				continue
			}
			doc.Words = append(doc.Words, roster.Word{
				Text: txt,
				X0:   row.left,
				Y0:   row.top,
				X1:   row.left + row.width,
				Y1:   row.top + row.height,
				Conf: row.conf,
			})
			if row.conf >= 0 {
				sum += row.conf
				n++
			}
			k := lineKey{row.block, row.par, row.line}
			switch {
			case first:
				first = false
			case k == last:
				b.WriteString(" ")
			case k.block != last.block:
				b.WriteString("\n\n")
			default:
				b.WriteString("\n")
			}
			last = k
			b.WriteString(txt)
		}
	}

	if len(doc.Words) == 0 && doc.Width == 0 {
		return roster.Document{}, 0, fmt.Errorf("no usable tsv rows")
	}

	doc.Text = b.String()
	var conf float32
	if n > 0 {
		conf = float32(sum / float64(n) / 100.0)
	}
	return doc, conf, nil
}

// tesseractTSV runs tesseract in TSV mode against a single image and parses
// the output into a positioned document.
func (e *Extractor) tesseractTSV(ctx context.Context, path string) (roster.Document, float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return roster.Document{}, 0, []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	doc, conf, err := ParseTSV(out)
	if err != nil {
		return roster.Document{}, 0, nil, err
	}
	return doc, conf, nil, nil
}
