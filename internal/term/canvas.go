// Package term renders the particle field into a terminal through tcell.
// Each cell stands for a cellWidth × cellHeight block of canvas pixels, so
// particle density matches the window build for the same physical area.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Canvas adapts a tcell.Screen to field.Canvas. Terminals cannot blur, so
// the blur argument is ignored and opacity is blended against the background.
type Canvas struct {
	screen       tcell.Screen
	cellW, cellH int
	background   colorful.Color
}

func NewCanvas(screen tcell.Screen, cellW, cellH int) *Canvas {
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

func (c *Canvas) Size() (int, int) {
	cols, rows := c.screen.Size()
	return cols * c.cellW, rows * c.cellH
}

func (c *Canvas) Clear() { c.screen.Clear() }

// Cell maps a canvas point to the cell containing it.
func (c *Canvas) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(c.cellW))), int(math.Floor(y / float64(c.cellH)))
}

// Point maps a cell to the canvas point at its center.
func (c *Canvas) Point(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(c.cellW), (float64(row) + 0.5) * float64(c.cellH)
}

func (c *Canvas) inside(col, row int) bool {
	cols, rows := c.screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

func (c *Canvas) FillCircle(x, y, r float64, col color.RGBA, alpha, _ float64) {
	cx, cy := c.Cell(x, y)
	// a particle sitting exactly on the right or bottom wall belongs to the last cell
	cols, rows := c.screen.Size()
	cx, cy = min(cx, cols-1), min(cy, rows-1)
	if !c.inside(cx, cy) {
		return
	}
	c.screen.SetContent(cx, cy, glyph(r), nil, c.style(col, alpha))
}

func glyph(r float64) rune {
	switch {
	case r < 1.5:
		return '·'
	case r < 2.5:
		return '•'
	}
	return '●'
}

// StrokeLine walks the cells between the two endpoints and marks the empty
// ones, leaving particle glyphs on top.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, _ float64, col color.RGBA, alpha, _ float64) {
	c1, r1 := c.Cell(x1, y1)
	c2, r2 := c.Cell(x2, y2)
	steps := max(abs(c2-c1), abs(r2-r1))
	if steps < 2 {
		return
	}
	style := c.style(col, alpha)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		cx := c1 + int(math.Round(t*float64(c2-c1)))
		cy := r1 + int(math.Round(t*float64(r2-r1)))
		if !c.inside(cx, cy) {
			continue
		}
		if mainc, _, _, _ := c.screen.GetContent(cx, cy); mainc != ' ' && mainc != 0 {
			continue
		}
		c.screen.SetContent(cx, cy, '.', nil, style)
	}
}

// style blends col over the background by alpha, since cells have no
// transparency.
func (c *Canvas) style(col color.RGBA, alpha float64) tcell.Style {
	fg := colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
	r, g, b := c.background.BlendRgb(fg, math.Max(0, math.Min(1, alpha))).Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
