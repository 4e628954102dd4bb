package server

import (
	"context"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/detector"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/images"
)

// Result is the outcome of running the detection pipeline over one image.
type Result struct {
	Detections     []detector.Detection
	AnnotatedImage string // JPEG data URI
}

// Pipeline runs the full base64 -> inference -> annotated-image
// transformation shared by both endpoints.
type Pipeline interface {
	Run(ctx context.Context, imageB64 string) (*Result, error)
}

// DetectorPipeline composes the image codec with a Detector.
type DetectorPipeline struct {
	detector *detector.Detector
}

// NewPipeline wraps a Detector into the pipeline consumed by the handlers.
func NewPipeline(d *detector.Detector) *DetectorPipeline {
	return &DetectorPipeline{detector: d}
}

// Run decodes imageB64, runs detection, and encodes the annotated copy.
func (p *DetectorPipeline) Run(ctx context.Context, imageB64 string) (*Result, error) {
	src, err := images.Decode(imageB64)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	detections, annotated, err := p.detector.Detect(ctx, src)
	if err != nil {
		return nil, err
	}
	defer annotated.Close()

	dataURI, err := images.EncodeDataURI(annotated)
	if err != nil {
		return nil, err
	}

	return &Result{Detections: detections, AnnotatedImage: dataURI}, nil
}
