package raster

// DrawLine draws a Bresenham line between two screen-space integer points,
// inclusive of both endpoints, into the color buffer. It does not touch
// the depth buffer: wireframe mode draws over whatever was filled.
func DrawLine(fb *Framebuffer, x0, y0, x1, y1 int, color uint32) {
	if x0 == x1 {
		drawVertical(fb, x0, y0, y1, color)
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	if dy <= dx {
		drawShallow(fb, x0, y0, x1, y1, color)
	} else {
		drawSteep(fb, x0, y0, x1, y1, color)
	}
}

func drawVertical(fb *Framebuffer, x, y0, y1 int, color uint32) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		put(fb, x, y, color)
	}
}

// drawShallow handles |dy| <= |dx|, stepping one pixel in x per iteration.
func drawShallow(fb *Framebuffer, x0, y0, x1, y1 int, color uint32) {
	if x0 > x1 {
		x0, x1, y0, y1 = x1, x0, y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	yStep := 1
	if dy < 0 {
		yStep = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		put(fb, x, y, color)
		if d > 0 {
			y += yStep
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// drawSteep handles |dy| > |dx|, stepping one pixel in y per iteration.
func drawSteep(fb *Framebuffer, x0, y0, x1, y1 int, color uint32) {
	if y0 > y1 {
		x0, x1, y0, y1 = x1, x0, y1, y0
	}
	dy := y1 - y0
	dx := x1 - x0
	xStep := 1
	if dx < 0 {
		xStep = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		put(fb, x, y, color)
		if d > 0 {
			x += xStep
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

func put(fb *Framebuffer, x, y int, color uint32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Color[fb.index(x, y)] = color
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
