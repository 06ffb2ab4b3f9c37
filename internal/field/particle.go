package field

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/ambient-field/internal/config"
)

// Particle is a single point in the field. It has no identity beyond its
// index in the field's slice.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Size      float64 // base radius
	Radius    float64 // pulsed radius, recomputed every update
	Color     color.RGBA
	Alpha     float64
	PulseFreq float64
}

// Palette is the parsed form of config.Palette.
var Palette = mustParsePalette(config.Palette[:])

func mustParsePalette(hexes []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// ParseHex converts a #rrggbb string into an opaque color.
func ParseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func distance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
