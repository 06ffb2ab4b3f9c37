// Package cursor models the custom pointer: a dot that follows the mouse and
// a chain of trailing dots, each easing toward the one ahead of it.
package cursor

import (
	"image/color"

	"github.com/iburimskiy/ambient-field/internal/config"
)

type State int

const (
	Idle State = iota
	Hover
	Pressed
)

// Dot is one trail element.
type Dot struct {
	X, Y             float64
	TargetX, TargetY float64
	Opacity          float64
	Scale            float64
}

type Cursor struct {
	X, Y   float64
	Active bool
	State  State
	Trail  []Dot

	base, hover color.RGBA
}

func New(base, hover color.RGBA) *Cursor {
	c := &Cursor{
		Trail: make([]Dot, config.TrailLength),
		base:  base,
		hover: hover,
	}
	n := float64(config.TrailLength)
	for i := range c.Trail {
		c.Trail[i].Opacity = (n - float64(i)) / n * config.TrailMaxOpacity
		c.Trail[i].Scale = 1 - float64(i)*config.TrailScaleStep
	}
	return c
}

func (c *Cursor) Enter() { c.Active = true }

func (c *Cursor) Leave() { c.Active = false }

// Move positions the cursor and retargets the trail. Moves are ignored while
// the pointer is outside the window.
func (c *Cursor) Move(x, y float64) {
	if !c.Active {
		return
	}
	c.X, c.Y = x, y
	for i := range c.Trail {
		if i == 0 {
			c.Trail[i].TargetX, c.Trail[i].TargetY = x, y
			continue
		}
		c.Trail[i].TargetX = c.Trail[i-1].X
		c.Trail[i].TargetY = c.Trail[i-1].Y
	}
}

// Step eases every trail dot a fixed fraction toward its target.
func (c *Cursor) Step() {
	for i := range c.Trail {
		d := &c.Trail[i]
		d.X += (d.TargetX - d.X) * config.TrailEase
		d.Y += (d.TargetY - d.Y) * config.TrailEase
	}
}

// Scale is the cursor dot's size multiplier for its current state.
func (c *Cursor) Scale() float64 {
	switch c.State {
	case Pressed:
		return config.CursorPressScale
	case Hover:
		return config.CursorHoverScale
	}
	return 1
}

func (c *Cursor) Color() color.RGBA {
	if c.State == Hover {
		return c.hover
	}
	return c.base
}

// SetInput derives the state from the button and hover flags. A press wins
// over hover.
func (c *Cursor) SetInput(pressed, hovering bool) {
	switch {
	case pressed:
		c.State = Pressed
	case hovering:
		c.State = Hover
	default:
		c.State = Idle
	}
}
