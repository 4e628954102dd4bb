package inference

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(c color.RGBA, width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestWriteTensorSolidRed(t *testing.T) {
	data := make([]float32, 3*InputSize*InputSize)
	err := writeTensor(solidImage(color.RGBA{R: 255, A: 255}, 100, 100), data)
	require.NoError(t, err)

	channelSize := InputSize * InputSize
	// Spot-check the planar RGB layout: red channel saturated, green and
	// blue empty.
	for _, i := range []int{0, channelSize / 2, channelSize - 1} {
		assert.InDelta(t, 1.0, data[i], 0.02, "red channel at %d", i)
		assert.InDelta(t, 0.0, data[channelSize+i], 0.02, "green channel at %d", i)
		assert.InDelta(t, 0.0, data[2*channelSize+i], 0.02, "blue channel at %d", i)
	}
}

func TestWriteTensorValueRange(t *testing.T) {
	data := make([]float32, 3*InputSize*InputSize)
	err := writeTensor(solidImage(color.RGBA{R: 10, G: 200, B: 90, A: 255}, 320, 240), data)
	require.NoError(t, err)

	for i, v := range data {
		if v < 0 || v > 1 {
			t.Fatalf("value %f at index %d outside [0,1]", v, i)
		}
	}
}

func TestWriteTensorShortBuffer(t *testing.T) {
	err := writeTensor(solidImage(color.RGBA{A: 255}, 10, 10), make([]float32, 16))
	assert.Error(t, err)
}
