package cursor

import (
	"image/color"
	"math"
	"testing"
)

var (
	cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	violet = color.RGBA{R: 157, G: 0, B: 255, A: 255}
)

func TestNew_TrailFalloff(t *testing.T) {
	c := New(cyan, violet)
	if len(c.Trail) != 10 {
		t.Fatalf("trail length = %d, want 10", len(c.Trail))
	}
	if math.Abs(c.Trail[0].Opacity-0.2) > 1e-9 || math.Abs(c.Trail[9].Opacity-0.02) > 1e-9 {
		t.Errorf("opacity falloff = %g..%g, want 0.2..0.02", c.Trail[0].Opacity, c.Trail[9].Opacity)
	}
	if c.Trail[0].Scale != 1 || math.Abs(c.Trail[9].Scale-0.1) > 1e-9 {
		t.Errorf("scale falloff = %g..%g, want 1..0.1", c.Trail[0].Scale, c.Trail[9].Scale)
	}
}

func TestMove_IgnoredWhileInactive(t *testing.T) {
	c := New(cyan, violet)
	c.Move(100, 100)
	if c.X != 0 || c.Trail[0].TargetX != 0 {
		t.Errorf("inactive cursor moved to (%g, %g)", c.X, c.Y)
	}
}

func TestStep_EasesTowardTarget(t *testing.T) {
	c := New(cyan, violet)
	c.Enter()
	c.Move(100, 50)
	c.Step()

	if got := c.Trail[0].X; math.Abs(got-10) > 1e-9 {
		t.Errorf("lead dot x after one step = %g, want 10", got)
	}
	if got := c.Trail[0].Y; math.Abs(got-5) > 1e-9 {
		t.Errorf("lead dot y after one step = %g, want 5", got)
	}
	if c.Trail[1].X != 0 {
		t.Errorf("second dot moved before retarget: %g", c.Trail[1].X)
	}

	// the chain only learns the lead's new position on the next move
	c.Move(100, 50)
	c.Step()
	if got := c.Trail[1].X; math.Abs(got-1) > 1e-9 {
		t.Errorf("second dot x = %g, want 1", got)
	}
}

func TestStep_Converges(t *testing.T) {
	c := New(cyan, violet)
	c.Enter()
	for i := 0; i < 2000; i++ {
		c.Move(300, 200)
		c.Step()
	}
	for i, d := range c.Trail {
		if math.Abs(d.X-300) > 0.01 || math.Abs(d.Y-200) > 0.01 {
			t.Errorf("dot %d at (%g, %g), want near (300, 200)", i, d.X, d.Y)
		}
	}
}

func TestSetInput(t *testing.T) {
	tests := []struct {
		name      string
		pressed   bool
		hovering  bool
		wantState State
		wantScale float64
		wantColor color.RGBA
	}{
		{"idle", false, false, Idle, 1, cyan},
		{"hover", false, true, Hover, 2, violet},
		{"pressed", true, false, Pressed, 0.8, cyan},
		{"pressed over target", true, true, Pressed, 0.8, cyan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(cyan, violet)
			c.SetInput(tt.pressed, tt.hovering)
			if c.State != tt.wantState {
				t.Errorf("state = %v, want %v", c.State, tt.wantState)
			}
			if c.Scale() != tt.wantScale {
				t.Errorf("scale = %g, want %g", c.Scale(), tt.wantScale)
			}
			if c.Color() != tt.wantColor {
				t.Errorf("color = %v, want %v", c.Color(), tt.wantColor)
			}
		})
	}
}
