// Package input defines the seam between the renderer core and whatever
// owns the real OS window: a small boolean keystate / mouse-state / cursor
// position contract, narrowed from the richer multi-window handler design
// gviegas-neo3/wsi uses down to the single fixed set of bindings this
// renderer reads.
package input

// Key identifies one of the keys the renderer core polls each frame.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeyI
	KeyK
	KeyJ
	KeyL
	KeyZ
	KeyX
	KeyM
	KeySpace
)

// Button identifies one of the mouse buttons the renderer core polls.
type Button int

const (
	ButtonLeft Button = iota
)

// State is the input snapshot the frame orchestrator reads once per tick.
// A presentation backend implements this over whatever platform library it
// uses; the renderer core never depends on the backend directly.
type State interface {
	// KeyHeld reports whether k is currently held down.
	KeyHeld(k Key) bool
	// ButtonHeld reports whether b is currently held down.
	ButtonHeld(b Button) bool
	// ButtonPressed reports whether b transitioned to held this tick
	// (edge-triggered, for the left-click pixel-info dump).
	ButtonPressed(b Button) bool
	// CursorPos returns the cursor position in framebuffer pixel
	// coordinates, origin at the bottom-left, Y increasing upward.
	CursorPos() (x, y int)
}
