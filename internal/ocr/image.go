package ocr

import (
	"context"

	"github.com/chargeboard/rosterscan/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	doc, ocrConf, warn, err := e.tesseractTSV(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE, Warnings: warn}, err
	}
	doc.Text = Normalize(doc.Text)

	// blend: weight engine confidence higher when present
	heurConf := heuristicConfidence(doc.Text)
	var conf float32
	if ocrConf > 0 {
		conf = 0.7*ocrConf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return ExtractionResult{
		Doc:        doc,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warn,
		Confidence: conf,
	}, nil
}
