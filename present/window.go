// Package present implements the on-screen presentation backend: a real
// OS window that receives the packed color buffer every frame and polls
// keyboard/mouse state into an input.State, built on
// github.com/hajimehoshi/ebiten/v2 the way
// IntuitionAmiga-IntuitionEngine's video backend uses it.
package present

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mfritz/swrast/input"
)

// Window owns the ebiten game loop and the color buffer the renderer
// writes into directly. It implements input.State so the renderer core
// can poll it without importing ebiten.
type Window struct {
	width, height int
	title         string

	mu    sync.RWMutex
	color []uint32
	image *ebiten.Image

	frameFn func()
}

// keymap translates the narrow input.Key set into ebiten key codes.
var keymap = map[input.Key]ebiten.Key{
	input.KeyW:     ebiten.KeyW,
	input.KeyS:     ebiten.KeyS,
	input.KeyA:     ebiten.KeyA,
	input.KeyD:     ebiten.KeyD,
	input.KeyI:     ebiten.KeyI,
	input.KeyK:     ebiten.KeyK,
	input.KeyJ:     ebiten.KeyJ,
	input.KeyL:     ebiten.KeyL,
	input.KeyZ:     ebiten.KeyZ,
	input.KeyX:     ebiten.KeyX,
	input.KeyM:     ebiten.KeyM,
	input.KeySpace: ebiten.KeySpace,
}

// NewWindow allocates the color buffer and returns an unstarted Window.
// Call SetFrameFunc before Run.
func NewWindow(width, height int, title string) *Window {
	return &Window{
		width:  width,
		height: height,
		title:  title,
		color:  make([]uint32, width*height),
	}
}

// SetFrameFunc sets the function called once per tick, before the color
// buffer is blitted. It is typically a closure over a renderer State that
// calls State.Frame(w), since Window itself implements input.State.
func (w *Window) SetFrameFunc(fn func(*Window)) {
	w.frameFn = func() { fn(w) }
}

// ColorBuffer returns the buffer the renderer should write packed pixels
// into; it is sized width*height and never reallocated.
func (w *Window) ColorBuffer() []uint32 { return w.color }

// Run starts the ebiten game loop. It blocks until the window is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("present: run game: %w", err)
	}
	return nil
}

// Update implements ebiten.Game: it runs one renderer frame per tick.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if w.frameFn != nil {
		w.mu.Lock()
		w.frameFn()
		w.mu.Unlock()
	}
	return nil
}

// Draw implements ebiten.Game: it blits the renderer's color buffer.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(w.width, w.height)
	}
	w.mu.RLock()
	pix := make([]byte, len(w.color)*4)
	for i, c := range w.color {
		pix[i*4+0] = byte(c >> 16) // red
		pix[i*4+1] = byte(c >> 8)  // green
		pix[i*4+2] = byte(c)       // blue
		pix[i*4+3] = byte(c >> 24) // alpha
	}
	w.mu.RUnlock()
	w.image.WritePixels(pix)
	screen.DrawImage(w.image, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) { return w.width, w.height }

// KeyHeld implements input.State.
func (w *Window) KeyHeld(k input.Key) bool {
	ek, ok := keymap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// ButtonHeld implements input.State.
func (w *Window) ButtonHeld(b input.Button) bool {
	if b != input.ButtonLeft {
		return false
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// ButtonPressed implements input.State: edge-triggered, true only on the
// tick the button transitions to held.
func (w *Window) ButtonPressed(b input.Button) bool {
	if b != input.ButtonLeft {
		return false
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// CursorPos implements input.State, flipping ebiten's top-left origin to
// the bottom-left origin the renderer core expects.
func (w *Window) CursorPos() (x, y int) {
	cx, cy := ebiten.CursorPosition()
	return cx, w.height - 1 - cy
}
