package engine

import (
	"math"

	"github.com/mfritz/swrast/linear"
)

// Camera holds the view parameters the frame orchestrator feeds into the
// view and projection matrix constructors each frame. Width doubles as
// degrees of field-of-view under perspective projection and world-space
// horizontal extent under orthographic projection, per the dual-use
// contract in the math kernel's perspective/orthographic constructors.
type Camera struct {
	Position linear.V3
	Width    float32
	Near     float32
	Far      float32

	Perspective bool
}

// viewMatrix builds the view matrix of a camera at Position looking at the
// fixed point (0,0,-1) with +Y up: right/up/target axes dotted with
// -Position.
func (c Camera) viewMatrix() linear.M4 {
	target := linear.V3{X: 0, Y: 0, Z: -1}
	up := linear.V3{X: 0, Y: 1, Z: 0}

	forward := target.Sub(c.Position)
	if forward.Len() == 0 {
		forward = linear.V3{X: 0, Y: 0, Z: -1}
	} else {
		forward = forward.Unit()
	}
	right := forward.Cross(up).Unit()
	camUp := right.Cross(forward)

	neg := c.Position.Neg()
	return linear.M4{
		{right.X, right.Y, right.Z, right.Dot(neg)},
		{camUp.X, camUp.Y, camUp.Z, camUp.Dot(neg)},
		{-forward.X, -forward.Y, -forward.Z, forward.Neg().Dot(neg)},
		{0, 0, 0, 1},
	}
}

// projMatrix builds the orthographic or perspective projection matrix for
// the camera's current mode, aspect ratio, and near/far planes.
func (c Camera) projMatrix(aspect float32) linear.M4 {
	if c.Perspective {
		fov := degToRad(c.Width)
		return linear.Perspective(fov, aspect, c.Near, c.Far)
	}
	return linear.Orthographic(c.Width, aspect)
}

func degToRad(deg float32) float32 { return deg * float32(math.Pi) / 180 }
