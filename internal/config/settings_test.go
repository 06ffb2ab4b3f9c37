package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	want := Default()
	if s != want {
		t.Errorf("Load(\"\") = %+v, want %+v", s, want)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, Settings)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
window:
  width: 800
  height: 600
seed: 42
physics: Delta
`,
			validate: func(t *testing.T, s Settings) {
				if s.Window.Width != 800 || s.Window.Height != 600 {
					t.Errorf("window = %dx%d, want 800x600", s.Window.Width, s.Window.Height)
				}
				if s.Window.Title != Default().Window.Title {
					t.Errorf("title = %q, want default", s.Window.Title)
				}
				if s.Seed != 42 {
					t.Errorf("seed = %d, want 42", s.Seed)
				}
				if s.Physics != PhysicsDeltaTime {
					t.Errorf("physics = %q, want %q", s.Physics, PhysicsDeltaTime)
				}
				if !s.HUD.Leaderboard {
					t.Errorf("hud.leaderboard should stay enabled")
				}
			},
		},
		{
			name: "hud toggles and terminal cells",
			yamlContent: `
hud:
  counter: false
  leaderboard: false
terminal:
  cellWidth: 10
  cellHeight: 20
  fps: 30
`,
			validate: func(t *testing.T, s Settings) {
				if s.HUD.Counter || s.HUD.Leaderboard {
					t.Errorf("hud = %+v, want counter and leaderboard disabled", s.HUD)
				}
				if s.Terminal.CellWidth != 10 || s.Terminal.CellHeight != 20 || s.Terminal.FPS != 30 {
					t.Errorf("terminal = %+v", s.Terminal)
				}
			},
		},
		{
			name:        "unknown physics mode",
			yamlContent: "physics: verlet\n",
			wantErr:     true,
			errContains: "physics must be",
		},
		{
			name:        "zero window",
			yamlContent: "window:\n  width: 0\n",
			wantErr:     true,
			errContains: "window size must be positive",
		},
		{
			name:        "fps out of range",
			yamlContent: "terminal:\n  fps: 1000\n",
			wantErr:     true,
			errContains: "terminal fps",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse settings YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "field.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			s, err := Load(tmpFile)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, s)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read settings file") {
		t.Fatalf("Load(missing) error = %v", err)
	}
}

func TestPaletteHasThreeHexColors(t *testing.T) {
	for i, hex := range Palette {
		if len(hex) != 7 || hex[0] != '#' {
			t.Errorf("Palette[%d] = %q, want #rrggbb", i, hex)
		}
	}
}
