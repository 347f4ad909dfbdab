// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import "github.com/mfritz/swrast/linear"

// SunLight is the single fixed directional light the rasterizer shades
// with. Direction feeds the per-vertex Lambertian term; Intensity scales
// the resulting per-pixel intensity before it is squared, so Intensity 0
// renders the mesh unlit and Intensity 1 reproduces the unscaled shading.
type SunLight struct {
	Direction linear.V3
	Intensity float32
}

// DefaultSunLight points straight out of the screen toward the viewer,
// matching raster.DefaultLight.
var DefaultSunLight = SunLight{
	Direction: linear.V3{X: 0, Y: 0, Z: 1},
	Intensity: 1,
}
