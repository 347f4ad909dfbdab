package raster

// Framebuffer owns the color, depth, and pixel-info buffers the
// rasterizer writes into. The color buffer is a borrow from the
// presentation layer (set once at init); depth and pixel-info are owned
// outright.
type Framebuffer struct {
	Width, Height int

	Color     []uint32
	Depth     []float32
	PixelInfo []PixelInfo

	ClearColor uint32
}

// NewFramebuffer allocates the depth and pixel-info buffers for the given
// dimensions and takes ownership of color, which the caller must size to
// width*height.
func NewFramebuffer(color []uint32, width, height int) *Framebuffer {
	return &Framebuffer{
		Width:     width,
		Height:    height,
		Color:     color,
		Depth:     make([]float32, width*height),
		PixelInfo: make([]PixelInfo, width*height),
	}
}

// Clear resets all three buffers: color to ClearColor, depth to 1.0
// (farthest), pixel-info to its zero value.
func (f *Framebuffer) Clear() {
	for i := range f.Color {
		f.Color[i] = f.ClearColor
	}
	for i := range f.Depth {
		f.Depth[i] = 1
	}
	for i := range f.PixelInfo {
		f.PixelInfo[i] = PixelInfo{}
	}
}

func (f *Framebuffer) index(x, y int) int { return y*f.Width + x }
