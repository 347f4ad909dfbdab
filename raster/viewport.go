package raster

import "github.com/mfritz/swrast/linear"

// debugAssertions gates the diagnostic panics spec.md §7 requires in debug
// builds for programmer-invariant violations (clipper output outside NDC,
// out-of-range pixel indices). Release behavior — clamp out-of-range NDC
// into [-1,1], skip out-of-range pixels, and continue — follows the same
// branch, so both paths type-check unconditionally instead of living
// behind a build tag.
const debugAssertions = true

// ScreenVertex is a vertex after perspective divide and viewport mapping:
// x, y in pixel coordinates, z in [0,1] depth, normal carried through for
// shading.
type ScreenVertex struct {
	X, Y, Z float32
	Normal  linear.V3
}

// ToScreen performs the perspective divide (clip -> NDC) and the NDC ->
// pixel transform for one vertex.
func ToScreen(v Vertex, width, height int) ScreenVertex {
	ndc := checkNDC(v.Pos.Div(v.Pos.W))

	return ScreenVertex{
		X:      (ndc.X + 1) * float32(width) / 2,
		Y:      (ndc.Y + 1) * float32(height) / 2,
		Z:      (ndc.Z + 1) / 2,
		Normal: v.Normal,
	}
}

func checkNDC(ndc linear.V4) linear.V4 {
	const tol = 1e-2
	inRange := ndc.X >= -1-tol && ndc.X <= 1+tol &&
		ndc.Y >= -1-tol && ndc.Y <= 1+tol &&
		ndc.Z >= -1-tol && ndc.Z <= 1+tol
	if inRange {
		return ndc
	}
	if debugAssertions {
		panic("raster: clipper produced a vertex outside NDC range")
	}
	ndc.X, ndc.Y, ndc.Z = clamp(ndc.X, -1, 1), clamp(ndc.Y, -1, 1), clamp(ndc.Z, -1, 1)
	return ndc
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
