package inference

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// PrepareInput populates the model input tensor with the image resized to
// InputSize x InputSize, in planar RGB order with values normalized to [0,1].
func PrepareInput(img image.Image, dst *ort.Tensor[float32]) error {
	return writeTensor(img, dst.GetData())
}

func writeTensor(img image.Image, data []float32) error {
	channelSize := InputSize * InputSize
	if len(data) < channelSize*3 {
		return errors.Errorf("input tensor holds %d floats, needs %d", len(data), channelSize*3)
	}
	red := data[0:channelSize]
	green := data[channelSize : channelSize*2]
	blue := data[channelSize*2 : channelSize*3]

	img = resize.Resize(InputSize, InputSize, img, resize.Lanczos3)

	i := 0
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			red[i] = float32(r>>8) / 255.0
			green[i] = float32(g>>8) / 255.0
			blue[i] = float32(b>>8) / 255.0
			i++
		}
	}
	return nil
}
