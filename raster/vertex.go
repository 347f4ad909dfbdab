// Package raster implements the transform, clip, viewport-map, and
// rasterize stages of the pipeline: everything between "mesh in object
// space" and "pixels in the color buffer".
package raster

import "github.com/mfritz/swrast/linear"

// Vertex is the attribute set the pipeline carries from transform through
// clipping: a homogeneous position and a normal. Interpolation (clipping,
// barycentric blending) treats every field the same way — linearly.
type Vertex struct {
	Pos    linear.V4
	Normal linear.V3
}

// Lerp returns v + t*(w - v), interpolating both position and normal.
func (v Vertex) Lerp(w Vertex, t float32) Vertex {
	return Vertex{
		Pos:    v.Pos.Lerp(w.Pos, t),
		Normal: v.Normal.Add(w.Normal.Sub(v.Normal).Scale(t)),
	}
}

// Transform maps an object-space vertex into clip space: clip = P * V * M * p.
// Normals pass through the model matrix untouched — the model transform is
// rigid plus uniform scale, so re-normalizing at shading time is enough.
func Transform(pos, normal linear.V3, model, view, proj linear.M4) Vertex {
	pv := proj.Mul(view).Mul(model)
	clip := pv.MulV4(linear.NewV4(pos, 1))
	return Vertex{Pos: clip, Normal: normal}
}
