// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package engine implements the frame orchestrator: it owns the
// framebuffers, the camera, and the one mesh being rendered, and drives
// the transform/clip/viewport/rasterize stages once per frame.
package engine

import "github.com/mfritz/swrast/linear"

const (
	// The per-frame step applied to translation key bindings (W/S/A/D),
	// in world units.
	dflKeyStep = 0.05

	// The per-frame step applied to the rotation key bindings (J/L), in
	// radians.
	dflRotStep = 0.03

	// The per-frame step applied to the camera horizontal parameter key
	// bindings (Z/X).
	dflCameraStep = 0.5
)

// Config is used to configure a new renderer State.
type Config struct {
	// The initial camera position.
	//
	// Default is (0, 0, 5).
	CameraPosition linear.V3

	// The initial camera horizontal parameter: degrees of field of view
	// when Perspective is true, world-space horizontal extent otherwise.
	//
	// Default is 60.
	CameraWidth float32

	// The initial near plane distance.
	//
	// Default is 1.
	Near float32

	// The initial far plane distance.
	//
	// Default is 10.
	Far float32

	// Whether the initial projection mode is perspective rather than
	// orthographic.
	//
	// Default is true.
	Perspective bool

	// The packed clear color.
	//
	// Default is opaque black.
	ClearColor uint32

	// The per-frame step applied to translation/scale key bindings.
	//
	// Default is 0.05.
	KeyStep float32

	// The per-frame step applied to the rotation key bindings, in
	// radians.
	//
	// Default is 0.03.
	RotStep float32

	// The per-frame step applied to the camera horizontal parameter key
	// bindings.
	//
	// Default is 0.5.
	CameraStep float32
}

// DefaultConfig returns the default configuration, matching §6's stated
// init() defaults: camera at (0,0,5), horizontal parameter 60, near=1,
// far=10, perspective projection.
func DefaultConfig() Config {
	return Config{
		CameraPosition: linear.V3{X: 0, Y: 0, Z: 5},
		CameraWidth:    60,
		Near:           1,
		Far:            10,
		Perspective:    true,
		ClearColor:     0xff000000,
		KeyStep:        dflKeyStep,
		RotStep:        dflRotStep,
		CameraStep:     dflCameraStep,
	}
}

var cfg = DefaultConfig()

// Configure replaces the package-level default configuration that New
// uses when called with a zero Config. It does not affect States already
// constructed.
func Configure(config *Config) { cfg = *config }

func init() { cfg = DefaultConfig() }
