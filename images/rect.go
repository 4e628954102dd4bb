package images

// Rect is an axis-aligned bounding box in absolute pixel coordinates, with
// (X1,Y1) the top-left corner and (X2,Y2) the bottom-right corner.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CalculateIoU returns the Intersection over Union of two boxes, a value in
// [0,1] used by NMS to decide whether two detections cover the same object.
//
//	IoU = Area of Intersection / Area of Union
func CalculateIoU(r, o Rect) float32 {
	// The intersection starts at the maximum of the top-left corners and ends
	// at the minimum of the bottom-right corners.
	ix1 := max(r.X1, o.X1)
	iy1 := max(r.Y1, o.Y1)
	ix2 := min(r.X2, o.X2)
	iy2 := min(r.Y2, o.Y2)

	interW := ix2 - ix1
	interH := iy2 - iy1
	if interW <= 0 || interH <= 0 {
		return 0.0
	}
	interArea := interW * interH

	// Union by inclusion-exclusion so the overlap is not counted twice.
	areaR := (r.X2 - r.X1) * (r.Y2 - r.Y1)
	areaO := (o.X2 - o.X1) * (o.Y2 - o.Y1)
	unionArea := areaR + areaO - interArea

	return float32(interArea) / float32(unionArea)
}
