package raster

import "github.com/mfritz/swrast/linear"

// Pack converts a color whose R, G, B components lie in [0,1] into a
// packed 32-bit little-endian pixel: byte order low-to-high is blue,
// green, red, alpha (alpha fixed opaque).
func Pack(c linear.V3) uint32 {
	r := uint32(clamp01(c.X)*255 + 0.5)
	g := uint32(clamp01(c.Y)*255 + 0.5)
	b := uint32(clamp01(c.Z)*255 + 0.5)
	const a = 255
	return b | g<<8 | r<<16 | a<<24
}

func clamp01(f float32) float32 { return clamp(f, 0, 1) }
