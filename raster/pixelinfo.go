package raster

import "github.com/mfritz/swrast/linear"

// PixelInfo is the debug record kept for every pixel: the three clip-space
// positions of the most recently written triangle and the final shaded
// color, consulted only by the left-click pick query.
type PixelInfo struct {
	Valid bool
	Tri   [3]linear.V4
	Color linear.V3
}
