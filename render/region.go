package render

import "github.com/gdamore/tcell/v2"

// region is a rectangular window onto a larger canvas.
type region struct {
	canvas        Canvas
	x, y          int
	width, height int
}

// Region returns a canvas covering width×height cells of canvas starting at
// (x, y). Writes outside the window are dropped.
func Region(canvas Canvas, x, y, width, height int) Canvas {
	return &region{canvas: canvas, x: x, y: y, width: max(width, 0), height: max(height, 0)}
}

func (r *region) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.canvas.SetContent(r.x+x, r.y+y, primary, combining, style)
}

func (r *region) Size() (int, int) {
	return r.width, r.height
}

// DrawText writes text on row y from column x, clipped to the canvas width.
func DrawText(canvas Canvas, x, y int, text string, style tcell.Style) {
	width, _ := canvas.Size()
	drawText(canvas, x, y, width, text, style)
}
