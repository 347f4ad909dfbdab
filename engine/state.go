package engine

import (
	"github.com/mfritz/swrast/input"
	"github.com/mfritz/swrast/internal/logx"
	"github.com/mfritz/swrast/internal/profile"
	"github.com/mfritz/swrast/linear"
	"github.com/mfritz/swrast/mesh"
	"github.com/mfritz/swrast/raster"
)

// State is the process-wide renderer state gviegas-neo3's engine package
// keeps as an implicit global; here it is an explicit value so a test (or
// a caller) can own several independent renderers at once.
type State struct {
	fb     *raster.Framebuffer
	width  int
	height int

	Camera    Camera
	Mesh      *mesh.Model
	Light     SunLight
	Wireframe bool
	LineColor linear.V3

	cfg Config
}

// New builds a State that writes into color (caller-owned, length
// width*height) and renders m. A zero Config uses the package defaults.
func New(color []uint32, width, height int, m *mesh.Model, config Config) *State {
	if (config == Config{}) {
		config = cfg
	}
	fb := raster.NewFramebuffer(color, width, height)
	fb.ClearColor = config.ClearColor

	return &State{
		fb:     fb,
		width:  width,
		height: height,
		Camera: Camera{
			Position:    config.CameraPosition,
			Width:       config.CameraWidth,
			Near:        config.Near,
			Far:         config.Far,
			Perspective: config.Perspective,
		},
		Mesh:      m,
		Light:     DefaultSunLight,
		LineColor: linear.V3{X: 1, Y: 1, Z: 1},
		cfg:       config,
	}
}

// ClearFrameBuffer fills the color buffer with the configured clear color
// without touching depth or pixel-info.
func (s *State) ClearFrameBuffer() {
	for i := range s.fb.Color {
		s.fb.Color[i] = s.fb.ClearColor
	}
}

// Frame runs one full pipeline pass: clear buffers, transform, clip,
// viewport-map, rasterize (or wireframe-draw) the mesh, then read in and
// update pose/camera/mode for the next frame. Apart from ClearFrameBuffer,
// which only refills the color buffer, it is the only method that mutates
// State.
func (s *State) Frame(in input.State) {
	defer profile.Block("frame")()

	s.fb.Clear()
	if s.Mesh == nil || !s.Mesh.Valid() {
		s.updateFromInput(in)
		return
	}

	model := linear.Translation(s.Mesh.Position).
		Mul(linear.RotationZ(s.Mesh.RotZ)).
		Mul(linear.Scaling(s.Mesh.Scale))
	view := s.Camera.viewMatrix()
	aspect := float32(s.width) / float32(s.height)
	proj := s.Camera.projMatrix(aspect)

	s.renderMesh(model, view, proj)
	s.updateFromInput(in)
}

func (s *State) renderMesh(model, view, proj linear.M4) {
	defer profile.Block("rasterize")()

	m := s.Mesh
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		v0 := raster.Transform(m.Positions[i0], m.Normals[i0], model, view, proj)
		v1 := raster.Transform(m.Positions[i1], m.Normals[i1], model, view, proj)
		v2 := raster.Transform(m.Positions[i2], m.Normals[i2], model, view, proj)

		poly := raster.ClipTriangle(v0, v1, v2)
		if poly == nil {
			continue
		}
		for _, tri := range raster.FanTriangulate(poly) {
			s0 := raster.ToScreen(tri[0], s.width, s.height)
			s1 := raster.ToScreen(tri[1], s.width, s.height)
			s2 := raster.ToScreen(tri[2], s.width, s.height)

			if s.Wireframe {
				s.drawWireTriangle(s0, s1, s2)
				continue
			}
			raster.FillTriangle(s.fb, tri, [3]raster.ScreenVertex{s0, s1, s2},
				raster.DefaultMaterial, s.Light.Direction, s.Light.Intensity)
		}
	}
}

func (s *State) drawWireTriangle(a, b, c raster.ScreenVertex) {
	color := raster.Pack(s.LineColor)
	raster.DrawLine(s.fb, int(a.X), int(a.Y), int(b.X), int(b.Y), color)
	raster.DrawLine(s.fb, int(b.X), int(b.Y), int(c.X), int(c.Y), color)
	raster.DrawLine(s.fb, int(c.X), int(c.Y), int(a.X), int(a.Y), color)
}

// updateFromInput applies the key bindings of §6: W/S/A/D translate the
// mesh, I/K scale it, J/L rotate it about Z, Z/X narrow/widen the camera
// horizontal parameter, M and space toggle wireframe/orthographic while
// held, and an edge-triggered left click dumps the pixel-info record
// under the cursor to the log.
func (s *State) updateFromInput(in input.State) {
	if in == nil {
		return
	}
	step := s.cfg.KeyStep
	if s.Mesh != nil {
		if in.KeyHeld(input.KeyW) {
			s.Mesh.Position.Y += step
		}
		if in.KeyHeld(input.KeyS) {
			s.Mesh.Position.Y -= step
		}
		if in.KeyHeld(input.KeyA) {
			s.Mesh.Position.X -= step
		}
		if in.KeyHeld(input.KeyD) {
			s.Mesh.Position.X += step
		}
		if in.KeyHeld(input.KeyI) {
			s.Mesh.Scale = s.Mesh.Scale.Scale(1 - step)
		}
		if in.KeyHeld(input.KeyK) {
			s.Mesh.Scale = s.Mesh.Scale.Scale(1 + step)
		}
		if in.KeyHeld(input.KeyJ) {
			s.Mesh.RotZ += s.cfg.RotStep
		}
		if in.KeyHeld(input.KeyL) {
			s.Mesh.RotZ -= s.cfg.RotStep
		}
	}
	if in.KeyHeld(input.KeyZ) {
		s.Camera.Width -= s.cfg.CameraStep
	}
	if in.KeyHeld(input.KeyX) {
		s.Camera.Width += s.cfg.CameraStep
	}
	s.Wireframe = in.KeyHeld(input.KeyM)
	s.Camera.Perspective = !in.KeyHeld(input.KeySpace)

	if in.ButtonPressed(input.ButtonLeft) {
		s.dumpPixelInfo(in)
	}
}

func (s *State) dumpPixelInfo(in input.State) {
	x, y := in.CursorPos()
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	pi := s.fb.PixelInfo[y*s.width+x]
	if !pi.Valid {
		logx.Info("pixel-info: no triangle under cursor", "x", x, "y", y)
		return
	}
	logx.Info("pixel-info", "x", x, "y", y, "tri", pi.Tri, "color", pi.Color)
}
