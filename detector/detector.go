// Package detector - YOLO object detection: inference, output decoding, and
// box annotation.
package detector

import (
	"context"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/images"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/inference"
)

const (
	// DefaultConfidenceThreshold drops anchors whose best class score is
	// below it.
	DefaultConfidenceThreshold = 0.5
	// DefaultIoUThreshold suppresses overlapping boxes above it during NMS.
	DefaultIoUThreshold = 0.7
)

// Detection is one detected object in source-image pixel coordinates.
type Detection struct {
	Class      string      `json:"class"`
	Confidence float32     `json:"confidence"`
	Box        images.Rect `json:"box"`
}

// Config carries detection thresholds.
type Config struct {
	ConfidenceThreshold float32
	IoUThreshold        float32
}

// Detector runs the model over images using sessions borrowed from a pool.
type Detector struct {
	pool *inference.Pool
	conf float32
	iou  float32
}

// New creates a Detector over the given session pool. Zero thresholds fall
// back to the defaults.
func New(pool *inference.Pool, cfg Config) *Detector {
	conf := cfg.ConfidenceThreshold
	if conf <= 0 {
		conf = DefaultConfidenceThreshold
	}
	iou := cfg.IoUThreshold
	if iou <= 0 {
		iou = DefaultIoUThreshold
	}
	return &Detector{pool: pool, conf: conf, iou: iou}
}

// Detect runs inference on src and returns the detections together with an
// annotated copy of the image. The caller owns the returned Mat and must
// Close it. The detections slice is never nil.
func (d *Detector) Detect(ctx context.Context, src gocv.Mat) ([]Detection, gocv.Mat, error) {
	img, err := src.ToImage()
	if err != nil {
		return nil, gocv.Mat{}, errors.Wrap(err, "convert image")
	}

	session, err := d.pool.Acquire(ctx)
	if err != nil {
		return nil, gocv.Mat{}, err
	}
	defer d.pool.Release(session)

	output, err := session.Run(img)
	if err != nil {
		return nil, gocv.Mat{}, err
	}

	// The output slice aliases the session tensor, so it must be decoded
	// before the session is released.
	detections := DecodeOutput(output, src.Cols(), src.Rows(), d.conf, d.iou)

	return detections, Annotate(src, detections), nil
}
