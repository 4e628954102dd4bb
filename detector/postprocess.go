package detector

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/images"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/inference"
)

// DecodeOutput converts the raw [1,84,8400] YOLO output head into detections
// in source-image pixel coordinates.
//
// The head is laid out column-major per anchor: 4 box values (center x,
// center y, width, height at the 640x640 input scale) followed by 80 class
// scores. Anchors below confThreshold are dropped, boxes are scaled to the
// source dimensions and clamped to its bounds, and overlapping boxes are
// removed with greedy NMS at iouThreshold.
func DecodeOutput(output []float32, srcWidth, srcHeight int, confThreshold, iouThreshold float32) []Detection {
	boxes := make([]Detection, 0, 64)
	if len(output) < (4+inference.NumClasses)*inference.NumAnchors {
		return boxes
	}

	scaleX := float32(srcWidth) / inference.InputSize
	scaleY := float32(srcHeight) / inference.InputSize

	for idx := 0; idx < inference.NumAnchors; idx++ {
		classID := 0
		best := float32(-1)
		for c := 0; c < inference.NumClasses; c++ {
			score := output[inference.NumAnchors*(c+4)+idx]
			if score > best {
				best = score
				classID = c
			}
		}
		if best < confThreshold {
			continue
		}

		xc := output[idx]
		yc := output[inference.NumAnchors+idx]
		w := output[2*inference.NumAnchors+idx]
		h := output[3*inference.NumAnchors+idx]

		x1 := math32.Max(0, (xc-w/2)*scaleX)
		y1 := math32.Max(0, (yc-h/2)*scaleY)
		x2 := math32.Min(float32(srcWidth), (xc+w/2)*scaleX)
		y2 := math32.Min(float32(srcHeight), (yc+h/2)*scaleY)

		boxes = append(boxes, Detection{
			Class:      inference.ClassName(classID),
			Confidence: best,
			Box:        images.Rect{X1: int(x1), Y1: int(y1), X2: int(x2), Y2: int(y2)},
		})
	}

	sort.Slice(boxes, func(i, j int) bool {
		return boxes[i].Confidence > boxes[j].Confidence
	})

	return suppressOverlaps(boxes, iouThreshold)
}

// suppressOverlaps is greedy NMS over confidence-sorted detections: the
// highest-scoring box is kept and every remaining box overlapping it past the
// threshold is discarded.
func suppressOverlaps(boxes []Detection, iouThreshold float32) []Detection {
	kept := make([]Detection, 0, len(boxes))
	used := make([]bool, len(boxes))

	for i := range boxes {
		if used[i] {
			continue
		}
		kept = append(kept, boxes[i])
		used[i] = true

		for j := i + 1; j < len(boxes); j++ {
			if used[j] {
				continue
			}
			if images.CalculateIoU(boxes[i].Box, boxes[j].Box) > iouThreshold {
				used[j] = true
			}
		}
	}
	return kept
}
