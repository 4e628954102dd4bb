package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func testJPEGBase64(t *testing.T, width, height int) string {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecode(t *testing.T) {
	mat, err := Decode(testJPEGBase64(t, 120, 80))
	require.NoError(t, err)
	defer mat.Close()

	assert.False(t, mat.Empty())
	assert.Equal(t, 120, mat.Cols())
	assert.Equal(t, 80, mat.Rows())
	assert.Equal(t, 3, mat.Channels())
}

func TestDecodeMalformedBase64(t *testing.T) {
	mat, err := Decode("not!valid!base64!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
	// Failed decodes hand back the zero Mat so nothing native needs closing.
	assert.Equal(t, gocv.Mat{}, mat)
}

func TestDecodeNotAnImage(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("plain text, not an image"))
	mat, err := Decode(b64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
	assert.Equal(t, gocv.Mat{}, mat)
}

func TestEncodeDataURIRoundTrip(t *testing.T) {
	mat, err := Decode(testJPEGBase64(t, 64, 48))
	require.NoError(t, err)
	defer mat.Close()

	uri, err := EncodeDataURI(mat)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, DataURIPrefix))

	// The payload after the marker decodes back to a JPEG with the same
	// pixel dimensions.
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	require.NoError(t, err)

	decoded, err := gocv.IMDecode(raw, gocv.IMReadColor)
	require.NoError(t, err)
	defer decoded.Close()

	assert.Equal(t, mat.Cols(), decoded.Cols())
	assert.Equal(t, mat.Rows(), decoded.Rows())
}
