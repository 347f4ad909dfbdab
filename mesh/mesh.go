// Package mesh implements a minimal indexed triangle mesh, the subset of
// Wavefront OBJ needed to load one, and the normalization/normal-generation
// steps the renderer expects every loaded model to have gone through.
package mesh

import "github.com/mfritz/swrast/linear"

// Model is an indexed triangle mesh together with the world-space pose the
// renderer composes into the model matrix each frame.
type Model struct {
	Positions []linear.V3
	Normals   []linear.V3
	Indices   []uint32

	Position linear.V3
	Scale    linear.V3
	RotZ     float32 // radians, about the model's local Z axis
}

// New returns an empty model posed at the origin with unit scale.
func New() *Model {
	return &Model{Scale: linear.V3{X: 1, Y: 1, Z: 1}}
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Model) TriangleCount() int { return len(m.Indices) / 3 }

// Valid reports whether every index refers to a position in range and the
// index count is a multiple of three. The frame orchestrator checks this
// once at the start of every frame rather than on every vertex fetch.
func (m *Model) Valid() bool {
	n := uint32(len(m.Positions))
	for _, i := range m.Indices {
		if i >= n {
			return false
		}
	}
	return len(m.Indices)%3 == 0
}
