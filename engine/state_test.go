package engine

import (
	"testing"

	"github.com/mfritz/swrast/input"
	"github.com/mfritz/swrast/linear"
	"github.com/mfritz/swrast/mesh"
)

type fakeInput struct {
	held    map[input.Key]bool
	pressed map[input.Button]bool
	x, y    int
}

func (f *fakeInput) KeyHeld(k input.Key) bool          { return f.held[k] }
func (f *fakeInput) ButtonHeld(b input.Button) bool    { return false }
func (f *fakeInput) ButtonPressed(b input.Button) bool { return f.pressed[b] }
func (f *fakeInput) CursorPos() (int, int)             { return f.x, f.y }

func triangleMesh() *mesh.Model {
	m := mesh.New()
	m.Positions = []linear.V3{
		{X: -0.5, Y: -0.5, Z: 0},
		{X: 0.5, Y: -0.5, Z: 0},
		{X: 0, Y: 0.5, Z: 0},
	}
	m.Normals = []linear.V3{
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 1},
	}
	m.Indices = []uint32{0, 1, 2}
	return m
}

func TestFrameRendersTriangleIntoBuffer(t *testing.T) {
	const w, h = 64, 64
	color := make([]uint32, w*h)
	s := New(color, w, h, triangleMesh(), Config{})
	s.Camera.Position = linear.V3{X: 0, Y: 0, Z: 5}

	s.Frame(nil)

	var nonClear int
	clear := s.fb.ClearColor
	for _, c := range color {
		if c != clear {
			nonClear++
		}
	}
	if nonClear == 0 {
		t.Fatalf("expected Frame to write non-background pixels")
	}
}

func TestFrameAppliesKeyBindings(t *testing.T) {
	const w, h = 32, 32
	color := make([]uint32, w*h)
	s := New(color, w, h, triangleMesh(), Config{})
	startX := s.Mesh.Position.X

	in := &fakeInput{held: map[input.Key]bool{input.KeyD: true}}
	s.Frame(in)

	if s.Mesh.Position.X <= startX {
		t.Fatalf("KeyD: expected mesh to translate in +X, got %v -> %v", startX, s.Mesh.Position.X)
	}
}

func TestFrameWireframeToggle(t *testing.T) {
	const w, h = 32, 32
	color := make([]uint32, w*h)
	s := New(color, w, h, triangleMesh(), Config{})

	in := &fakeInput{held: map[input.Key]bool{input.KeyM: true}}
	s.Frame(in)

	if !s.Wireframe {
		t.Fatalf("KeyM held: expected Wireframe to be true")
	}
}

func TestClearFrameBufferFillsClearColor(t *testing.T) {
	const w, h = 4, 4
	color := make([]uint32, w*h)
	s := New(color, w, h, mesh.New(), Config{ClearColor: 0xAABBCCDD})
	color[0] = 0
	s.ClearFrameBuffer()
	for _, c := range color {
		if c != 0xAABBCCDD {
			t.Fatalf("ClearFrameBuffer: have %#x want %#x", c, uint32(0xAABBCCDD))
		}
	}
}
