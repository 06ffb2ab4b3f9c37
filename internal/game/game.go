// Package game is the Ebiten front end: it owns the window, feeds pointer
// input to the field and cursor, and draws the field's display list under
// the HUD.
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ambient-field/internal/audio"
	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/cursor"
	"github.com/iburimskiy/ambient-field/internal/field"
	"github.com/iburimskiy/ambient-field/internal/lobby"
)

type Game struct {
	settings config.Settings
	logger   *log.Logger

	// field
	canvas *field.Recorder
	field  *field.Field
	frames *field.FrameScheduler

	// overlays
	cursor      *cursor.Cursor
	counter     *lobby.Counter
	leaderboard *lobby.Leaderboard
	player      *audio.Player

	// viewport reported by Layout, applied on the next Update
	width, height int
	resized       bool

	// pointer
	pointerInside bool
	pointerMoved  bool
	lastX, lastY  int

	buttonHovered bool
	buttonPressed bool

	time       float64
	lastUpdate time.Time
	lastErr    error
}

// New builds the field for the configured window size and starts its loop.
func New(s config.Settings, logger *log.Logger) (*Game, error) {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	canvas := field.NewRecorder(s.Window.Width, s.Window.Height)
	f, err := field.New(canvas,
		field.WithRand(rng),
		field.WithMode(field.ParseMode(s.Physics)),
		field.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}

	hover, err := field.ParseHex(config.HoverColor)
	if err != nil {
		return nil, err
	}

	g := &Game{
		settings:    s,
		logger:      logger,
		canvas:      canvas,
		field:       f,
		frames:      field.NewFrameScheduler(),
		cursor:      cursor.New(field.Palette[0], hover),
		counter:     lobby.NewCounter(rng),
		leaderboard: lobby.NewLeaderboard(rng, config.LeaderboardRows),
		player:      audio.NewPlayer(logger),
		width:       s.Window.Width,
		height:      s.Window.Height,
	}
	if err := f.Start(g.frames); err != nil {
		return nil, err
	}

	if s.Soundtrack != "" {
		if err := g.player.Load(s.Soundtrack); err != nil {
			// non-fatal, the field runs without sound
			g.logger.Printf("[Audio] soundtrack %s: %v", s.Soundtrack, err)
			g.lastErr = err
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := time.Second / 60
	if !g.lastUpdate.IsZero() {
		dt = min(now.Sub(g.lastUpdate), 250*time.Millisecond)
	}
	g.lastUpdate = now
	g.time += dt.Seconds()

	if g.resized {
		g.resized = false
		g.canvas.SetSize(g.width, g.height)
		g.field.Resize()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.openSoundtrack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleField()
	}

	g.updatePointer()

	g.counter.Step(dt)
	g.leaderboard.Step(dt)
	g.player.Update()

	g.frames.Advance(now)
	return nil
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height

	switch {
	case inside && !g.pointerInside:
		g.cursor.Enter()
	case !inside && g.pointerInside:
		g.cursor.Leave()
		g.field.PointerLeave()
	}
	g.pointerInside = inside

	if inside && (!g.pointerMoved || x != g.lastX || y != g.lastY) {
		g.field.PointerMove(float64(x), float64(y))
		g.cursor.Move(float64(x), float64(y))
		g.pointerMoved = true
	}
	g.lastX, g.lastY = x, y

	g.buttonHovered = inside &&
		x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.openSoundtrack()
		}
		g.buttonPressed = false
	}

	g.cursor.SetInput(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), g.buttonHovered)
	g.cursor.Step()
}

func (g *Game) toggleField() {
	if g.field.Running() {
		g.field.Stop()
		g.logger.Printf("[Field] paused")
		return
	}
	if err := g.field.Start(g.frames); err != nil {
		g.lastErr = err
		return
	}
	g.logger.Printf("[Field] resumed")
}

func (g *Game) openSoundtrack() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Extensions,
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	if err := g.player.Load(filename); err != nil {
		g.logger.Printf("[Audio] load %s: %v", filename, err)
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	drawOps(screen, g.canvas.Ops())
	if g.settings.HUD.Cursor {
		g.drawCursor(screen)
	}
	g.drawHUD(screen)
}

// Layout follows the window size so the canvas always matches the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}

// Close tears down the loop and the audio device.
func (g *Game) Close() {
	g.field.Stop()
	g.player.Close()
}
