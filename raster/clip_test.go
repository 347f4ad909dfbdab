package raster

import (
	"math"
	"testing"

	"github.com/mfritz/swrast/linear"
)

func near(a, b, tol float32) bool { return float32(math.Abs(float64(a-b))) <= tol }

func TestClipTriangleFullyInsideUnchanged(t *testing.T) {
	a := Vertex{Pos: linear.V4{X: -0.5, Y: -0.5, Z: 0, W: 1}}
	b := Vertex{Pos: linear.V4{X: 0.5, Y: -0.5, Z: 0, W: 1}}
	c := Vertex{Pos: linear.V4{X: 0, Y: 0.5, Z: 0, W: 1}}

	poly := ClipTriangle(a, b, c)
	if len(poly) != 3 {
		t.Fatalf("expected 3 vertices for fully-inside triangle, got %d", len(poly))
	}
}

func TestClipTriangleFullyOutsideRejected(t *testing.T) {
	far := Vertex{Pos: linear.V4{X: 0, Y: 0, Z: -100, W: 1}}
	poly := ClipTriangle(far, far, far)
	if poly != nil {
		t.Fatalf("expected rejection, got %d vertices", len(poly))
	}
}

func TestClipTriangleOutputWithinNDCTolerance(t *testing.T) {
	a := Vertex{Pos: linear.V4{X: -1, Y: -1, Z: -0.5, W: 1}}
	b := Vertex{Pos: linear.V4{X: 1, Y: -1, Z: -1.5, W: 1}}
	c := Vertex{Pos: linear.V4{X: 0, Y: 1, Z: -0.5, W: 1}}

	poly := ClipTriangle(a, b, c)
	if len(poly) == 0 {
		t.Fatalf("expected a clipped polygon, got none")
	}
	const eps = 1e-2
	for _, v := range poly {
		w := v.Pos.W
		if !(v.Pos.X <= w+eps && v.Pos.X >= -w-eps) ||
			!(v.Pos.Y <= w+eps && v.Pos.Y >= -w-eps) ||
			!(v.Pos.Z <= w+eps && v.Pos.Z >= -w-eps) {
			t.Fatalf("clipped vertex out of NDC tolerance: %+v", v)
		}
	}
}

func TestClipTriangleCrossingNearPlaneProducesQuad(t *testing.T) {
	a := Vertex{Pos: linear.V4{X: -1, Y: -1, Z: -0.5, W: 1}}
	b := Vertex{Pos: linear.V4{X: 1, Y: -1, Z: -1.5, W: 1}}
	c := Vertex{Pos: linear.V4{X: 0, Y: 1, Z: -0.5, W: 1}}

	poly := ClipTriangle(a, b, c)
	if len(poly) != 4 {
		t.Fatalf("expected a 4-vertex polygon crossing the near plane, got %d", len(poly))
	}
	tris := FanTriangulate(poly)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles from fan triangulation, got %d", len(tris))
	}
}

func TestFanTriangulateTooFewVertices(t *testing.T) {
	if tris := FanTriangulate([]Vertex{{}, {}}); tris != nil {
		t.Fatalf("expected nil for <3 vertices, got %d", len(tris))
	}
}
