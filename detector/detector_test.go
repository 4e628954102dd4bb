package detector

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/inference"
)

func TestDetectorDefaults(t *testing.T) {
	d := New(nil, Config{})
	assert.Equal(t, float32(DefaultConfidenceThreshold), d.conf)
	assert.Equal(t, float32(DefaultIoUThreshold), d.iou)

	d = New(nil, Config{ConfidenceThreshold: 0.25, IoUThreshold: 0.45})
	assert.Equal(t, float32(0.25), d.conf)
	assert.Equal(t, float32(0.45), d.iou)
}

func TestDetectPoolClosed(t *testing.T) {
	pool, err := inference.NewPool(func() (*inference.Session, error) {
		return &inference.Session{}, nil
	}, 1, 20*time.Millisecond)
	require.NoError(t, err)
	pool.Close()

	d := New(pool, Config{})

	src := gocv.NewMatWithSize(32, 32, gocv.MatTypeCV8UC3)
	defer src.Close()

	detections, annotated, err := d.Detect(context.Background(), src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inference.ErrPoolClosed))
	assert.Nil(t, detections)
	// Error paths hand back the zero Mat so nothing native needs closing.
	assert.Equal(t, gocv.Mat{}, annotated)
}
