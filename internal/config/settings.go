package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Physics stepping modes accepted in the settings file.
const (
	PhysicsPerFrame  = "frame"
	PhysicsDeltaTime = "delta"
)

// Settings holds the runtime options that may be overridden from YAML.
// The field constants above are fixed and never read from the file.
type Settings struct {
	Window     WindowSettings   `yaml:"window"`
	Seed       uint64           `yaml:"seed"` // 0 picks a time-based seed
	Physics    string           `yaml:"physics"`
	Soundtrack string           `yaml:"soundtrack"`
	HUD        HUDSettings      `yaml:"hud"`
	Terminal   TerminalSettings `yaml:"terminal"`
}

type WindowSettings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type HUDSettings struct {
	Counter     bool `yaml:"counter"`
	Leaderboard bool `yaml:"leaderboard"`
	Cursor      bool `yaml:"cursor"`
}

// TerminalSettings maps terminal cells to canvas pixels.
type TerminalSettings struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
	FPS        int `yaml:"fps"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     "Alpha Games - ambient field (M: music, Space: pause, Esc/Q: quit)",
			Resizable: true,
		},
		Physics: PhysicsPerFrame,
		HUD: HUDSettings{
			Counter:     true,
			Leaderboard: true,
			Cursor:      true,
		},
		Terminal: TerminalSettings{
			CellWidth:  TerminalCellWidth,
			CellHeight: TerminalCellHeight,
			FPS:        60,
		},
	}
}

// Load reads a YAML settings file on top of Default. An empty path returns the defaults.
func Load(filePath string) (Settings, error) {
	s := Default()
	if filePath == "" {
		return s, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate checks value ranges and normalizes the physics mode.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}

	s.Physics = strings.ToLower(strings.TrimSpace(s.Physics))
	switch s.Physics {
	case "":
		s.Physics = PhysicsPerFrame
	case PhysicsPerFrame, PhysicsDeltaTime:
	default:
		return fmt.Errorf("physics must be %q or %q, got %q", PhysicsPerFrame, PhysicsDeltaTime, s.Physics)
	}

	if s.Terminal.CellWidth <= 0 || s.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", s.Terminal.CellWidth, s.Terminal.CellHeight)
	}
	if s.Terminal.FPS <= 0 || s.Terminal.FPS > 240 {
		return fmt.Errorf("terminal fps must be between 1 and 240, got %d", s.Terminal.FPS)
	}
	return nil
}
