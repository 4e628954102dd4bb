package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateIoU(t *testing.T) {
	tests := []struct {
		name string
		r, o Rect
		want float32
	}{
		{
			name: "partial overlap",
			r:    Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:    Rect{X1: 5, Y1: 5, X2: 15, Y2: 15},
			// intersection 5x5=25, union 100+100-25=175
			want: 25.0 / 175.0,
		},
		{
			name: "identical boxes",
			r:    Rect{X1: 10, Y1: 10, X2: 20, Y2: 20},
			o:    Rect{X1: 10, Y1: 10, X2: 20, Y2: 20},
			want: 1.0,
		},
		{
			name: "no overlap",
			r:    Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:    Rect{X1: 20, Y1: 20, X2: 30, Y2: 30},
			want: 0.0,
		},
		{
			name: "touching edges",
			r:    Rect{X1: 0, Y1: 0, X2: 10, Y2: 10},
			o:    Rect{X1: 10, Y1: 0, X2: 20, Y2: 10},
			want: 0.0,
		},
		{
			name: "contained box",
			r:    Rect{X1: 0, Y1: 0, X2: 100, Y2: 100},
			o:    Rect{X1: 25, Y1: 25, X2: 75, Y2: 75},
			// intersection 2500, union 10000
			want: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateIoU(tt.r, tt.o), 1e-6)
			// IoU is symmetric.
			assert.InDelta(t, tt.want, CalculateIoU(tt.o, tt.r), 1e-6)
		})
	}
}
