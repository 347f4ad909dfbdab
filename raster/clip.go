package raster

import "github.com/mfritz/swrast/linear"

// plane is a homogeneous clip-space half-space n*(x,y,z,w) <= 0 (inside).
type plane struct {
	name string
	n    linear.V4
}

// planes holds the six canonical clip-space half-spaces, evaluated in this
// order against every triangle.
var planes = [6]plane{
	{"LEFT", linear.V4{X: -1, Y: 0, Z: 0, W: -1}},
	{"RIGHT", linear.V4{X: 1, Y: 0, Z: 0, W: -1}},
	{"BOTTOM", linear.V4{X: 0, Y: -1, Z: 0, W: -1}},
	{"TOP", linear.V4{X: 0, Y: 1, Z: 0, W: -1}},
	{"NEAR", linear.V4{X: 0, Y: 0, Z: -1, W: -1}},
	{"FAR", linear.V4{X: 0, Y: 0, Z: 1, W: -1}},
}

func (p plane) eval(v Vertex) float32 {
	return p.n.X*v.Pos.X + p.n.Y*v.Pos.Y + p.n.Z*v.Pos.Z + p.n.W*v.Pos.W
}

// clipEps nudges an interpolated vertex strictly inside the plane it was
// cut against, so later stages never see a boundary-exact point that
// numerical error could push back outside.
const clipEps = 1e-3

// maxClipVertices is the largest polygon six-plane clipping can produce
// from a triangle: one extra vertex per plane.
const maxClipVertices = 9

// ClipTriangle runs Sutherland-Hodgman clipping of the triangle (a, b, c)
// against the six canonical clip-space planes in order LEFT, RIGHT,
// BOTTOM, TOP, NEAR, FAR. It returns the resulting convex polygon (3-9
// vertices), or nil if the triangle was rejected entirely.
func ClipTriangle(a, b, c Vertex) []Vertex {
	poly := make([]Vertex, 0, maxClipVertices)
	poly = append(poly, a, b, c)

	for _, pl := range planes {
		if len(poly) == 0 {
			break
		}
		poly = clipAgainst(poly, pl)
	}
	if len(poly) < 3 {
		return nil
	}
	return poly
}

func clipAgainst(in []Vertex, pl plane) []Vertex {
	out := make([]Vertex, 0, len(in)+1)
	n := len(in)
	for i := 0; i < n; i++ {
		v1 := in[i]
		v2 := in[(i+1)%n]
		e1 := pl.eval(v1)
		e2 := pl.eval(v2)

		if e1 <= 0 {
			out = append(out, v1)
		}
		if (e1 <= 0) != (e2 <= 0) {
			t := e1 / (e1 - e2)
			if e1 <= 0 {
				t -= clipEps
			} else {
				t += clipEps
			}
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			out = append(out, v1.Lerp(v2, t))
		}
	}
	return out
}

// FanTriangulate converts a convex polygon v0...vn-1 into the triangles
// (v0, vi, vi+1) for i = 1..n-2, the same fan rule applied to clipped
// polygons and to OBJ faces with more than three vertices.
func FanTriangulate(poly []Vertex) [][3]Vertex {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]Vertex, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]Vertex{poly[0], poly[i], poly[i+1]})
	}
	return tris
}
