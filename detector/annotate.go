package detector

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var boxColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}

// Annotate returns a copy of src with every detection's box and label drawn
// on it. The caller owns the returned Mat.
func Annotate(src gocv.Mat, detections []Detection) gocv.Mat {
	annotated := src.Clone()

	for _, det := range detections {
		rect := image.Rect(det.Box.X1, det.Box.Y1, det.Box.X2, det.Box.Y2)
		gocv.Rectangle(&annotated, rect, boxColor, 2)

		label := fmt.Sprintf("%s %.2f", det.Class, det.Confidence)
		origin := image.Pt(det.Box.X1, det.Box.Y1-6)
		if origin.Y < 12 {
			// Keep the label inside the frame for boxes at the top edge.
			origin.Y = det.Box.Y1 + 16
		}
		gocv.PutText(&annotated, label, origin, gocv.FontHersheySimplex, 0.5, boxColor, 1)
	}

	return annotated
}
