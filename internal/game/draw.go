package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/field"
)

// Glow rings drawn under a blurred shape: offset as a fraction of the blur
// radius, and opacity as a fraction of the shape's alpha.
var glowRings = [...]struct{ spread, opacity float64 }{
	{0.5, 0.12},
	{0.25, 0.25},
}

// drawOps replays a field display list. Ebiten has no shadow blur, so glow
// is faked with a few wider translucent passes under each shape.
func drawOps(screen *ebiten.Image, ops []field.Op) {
	for _, op := range ops {
		switch op.Kind {
		case field.OpCircle:
			if op.Blur > 0 {
				for _, ring := range glowRings {
					r := op.R + op.Blur*ring.spread
					vector.DrawFilledCircle(screen, float32(op.X1), float32(op.Y1), float32(r), withAlpha(op.Color, op.Alpha*ring.opacity), true)
				}
			}
			vector.DrawFilledCircle(screen, float32(op.X1), float32(op.Y1), float32(op.R), withAlpha(op.Color, op.Alpha), true)

		case field.OpLine:
			if op.Blur > 0 {
				w := op.Width + op.Blur*glowRings[1].spread
				vector.StrokeLine(screen, float32(op.X1), float32(op.Y1), float32(op.X2), float32(op.Y2), float32(w), withAlpha(op.Color, op.Alpha*glowRings[1].opacity), true)
			}
			vector.StrokeLine(screen, float32(op.X1), float32(op.Y1), float32(op.X2), float32(op.Y2), float32(op.Width), withAlpha(op.Color, op.Alpha), true)
		}
	}
}

// drawBackground paints a slowly shifting dark vertical gradient in bands.
func (g *Game) drawBackground(screen *ebiten.Image) {
	const band = 8
	w := float32(g.width)
	for y := 0; y < g.height; y += band {
		ratio := float64(y) / float64(g.height)
		r := uint8(6 + 6*math.Sin(g.time*0.2+ratio*math.Pi))
		gv := uint8(6 + 4*math.Cos(g.time*0.15+ratio*math.Pi))
		b := uint8(16 + 10*math.Sin(g.time*0.25+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), w, band, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	c := g.cursor
	if !c.Active {
		return
	}
	for _, d := range c.Trail {
		r := config.CursorRadius * d.Scale
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(r), withAlpha(c.Color(), d.Opacity), true)
	}

	r := config.CursorRadius * c.Scale()
	col := c.Color()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(r*2), withAlpha(col, 0.15), true)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(r), withAlpha(col, 1), true)
}
