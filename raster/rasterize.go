package raster

import (
	"math"

	"github.com/mfritz/swrast/linear"
)

// DefaultMaterial is the fixed, non-textured surface color every triangle
// is shaded with: an R/G/B weighting of 0.8/0.0/1.0, matching the
// reference renderer's material constant.
var DefaultMaterial = linear.V3{X: 0.8, Y: 0.0, Z: 1.0}

// DefaultLight is the fixed directional light direction shading uses,
// pointing straight out of the screen toward the viewer.
var DefaultLight = linear.V3{X: 0, Y: 0, Z: 1}

type edge struct {
	a, b, c  float32 // E(x,y) = a*x + b*y + c
	topLeft  bool
}

func makeEdge(s, e ScreenVertex) edge {
	a := s.Y - e.Y
	b := e.X - s.X
	c := s.X*e.Y - e.X*s.Y
	topLeft := a > 0 || (a == 0 && b < 0)
	return edge{a: a, b: b, c: c, topLeft: topLeft}
}

func (ed edge) at(x, y float32) float32 { return ed.a*x + ed.b*y + ed.c }

// includes reports whether the edge value v includes the sample: strictly
// positive values are always inside; exactly-zero values are inside only
// on fill (top-left) edges.
func (ed edge) includes(v float32) bool {
	if v > 0 {
		return true
	}
	if v == 0 {
		return ed.topLeft
	}
	return false
}

// FillTriangle rasterizes one screen-space triangle into fb: back-face
// culling, bounding-box traversal, edge-function fill with the top-left
// rule, barycentric depth test, and quadratic-intensity Lambertian
// shading. clip holds the pre-divide clip-space vertices, recorded into
// the pixel-info buffer alongside the final color. lightIntensity scales
// the per-pixel intensity before it is squared, so a light with
// intensity 0 contributes no illumination and intensity 1 reproduces the
// unscaled shading.
func FillTriangle(fb *Framebuffer, clip [3]Vertex, screen [3]ScreenVertex, material, light linear.V3, lightIntensity float32) {
	p0, p1, p2 := screen[0], screen[1], screen[2]

	e01 := linear.V3{X: p1.X - p0.X, Y: p1.Y - p0.Y, Z: p1.Z - p0.Z}
	e02 := linear.V3{X: p2.X - p0.X, Y: p2.Y - p0.Y, Z: p2.Z - p0.Z}
	c := e01.Cross(e02)
	if c.Z < 0 {
		return
	}

	n0, n1, n2 := p0.Normal.Unit(), p1.Normal.Unit(), p2.Normal.Unit()
	light = light.Unit()
	i0 := fmax32(0, n0.Dot(light))
	i1 := fmax32(0, n1.Dot(light))
	i2 := fmax32(0, n2.Dot(light))

	minX := fmin32(p0.X, fmin32(p1.X, p2.X))
	maxX := fmax32(p0.X, fmax32(p1.X, p2.X))
	minY := fmin32(p0.Y, fmin32(p1.Y, p2.Y))
	maxY := fmax32(p0.Y, fmax32(p1.Y, p2.Y))

	minX = clamp(float32(math.Floor(float64(minX))), 0, float32(fb.Width-1))
	maxX = clamp(float32(math.Ceil(float64(maxX))), 0, float32(fb.Width-1))
	minY = clamp(float32(math.Floor(float64(minY))), 0, float32(fb.Height-1))
	maxY = clamp(float32(math.Ceil(float64(maxY))), 0, float32(fb.Height-1))

	edge0 := makeEdge(p1, p2) // opposite p0 -> weight alpha
	edge1 := makeEdge(p2, p0) // opposite p1 -> weight beta
	edge2 := makeEdge(p0, p1) // opposite p2 -> weight gamma

	sum := edge0.at(p0.X, p0.Y) + edge1.at(p0.X, p0.Y) + edge2.at(p0.X, p0.Y)
	if sum == 0 {
		return
	}

	rowStartX := minX + 0.5
	rowStartY := minY + 0.5

	e0Row := edge0.at(rowStartX, rowStartY)
	e1Row := edge1.at(rowStartX, rowStartY)
	e2Row := edge2.at(rowStartX, rowStartY)

	for y := int(minY); y <= int(maxY); y++ {
		e0, e1, e2 := e0Row, e1Row, e2Row
		for x := int(minX); x <= int(maxX); x++ {
			if edge0.includes(e0) && edge1.includes(e1) && edge2.includes(e2) {
				alpha, beta, gamma := e0/sum, e1/sum, e2/sum
				depth := alpha*p0.Z + beta*p1.Z + gamma*p2.Z

				idx := fb.index(x, y)
				if checkIndex(idx, len(fb.Depth)) && depth < fb.Depth[idx] {
					fb.Depth[idx] = depth
					intensity := clamp(alpha*i0+beta*i1+gamma*i2, 0, 1) * clamp(lightIntensity, 0, 1)
					color := material.Scale(intensity * intensity)
					fb.Color[idx] = Pack(color)
					fb.PixelInfo[idx] = PixelInfo{
						Valid: true,
						Tri:   [3]linear.V4{clip[0].Pos, clip[1].Pos, clip[2].Pos},
						Color: color,
					}
				}
			}
			e0 += edge0.a
			e1 += edge1.a
			e2 += edge2.a
		}
		e0Row += edge0.b
		e1Row += edge1.b
		e2Row += edge2.b
	}
}

func checkIndex(idx, n int) bool {
	if idx >= 0 && idx < n {
		return true
	}
	if debugAssertions {
		panic("raster: pixel index out of range")
	}
	return false
}

func fmin32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
