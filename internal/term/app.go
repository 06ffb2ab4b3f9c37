package term

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/field"
	"github.com/iburimskiy/ambient-field/internal/lobby"
)

// App runs the field on an initialized tcell screen. Input events and frame
// ticks are handled on the same goroutine, so the field is never touched
// concurrently.
type App struct {
	screen  tcell.Screen
	canvas  *Canvas
	field   *field.Field
	frames  *field.FrameScheduler
	counter *lobby.Counter
	logger  *log.Logger

	fps        int
	showStats  bool
	pointer    bool
	pointerCol int
	pointerRow int
	lastTick   time.Time
}

func NewApp(screen tcell.Screen, s config.Settings, logger *log.Logger) (*App, error) {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	canvas := NewCanvas(screen, s.Terminal.CellWidth, s.Terminal.CellHeight)
	f, err := field.New(canvas,
		field.WithRand(rng),
		field.WithMode(field.ParseMode(s.Physics)),
		field.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}

	a := &App{
		screen:    screen,
		canvas:    canvas,
		field:     f,
		frames:    field.NewFrameScheduler(),
		counter:   lobby.NewCounter(rng),
		logger:    logger,
		fps:       s.Terminal.FPS,
		showStats: s.HUD.Counter,
	}
	if err := f.Start(a.frames); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	return a, nil
}

// Run loops until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.Step(now)
		}
	}
}

// HandleEvent applies one input event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'f':
				a.toggleField()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		a.pointer, a.pointerCol, a.pointerRow = true, col, row
		a.field.PointerMove(a.canvas.Point(col, row))

	case *tcell.EventFocus:
		if !ev.Focused {
			a.pointer = false
			a.field.PointerLeave()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.field.Resize()
		w, h := a.canvas.Size()
		a.logger.Printf("[Term] resized to %dx%d canvas px", w, h)
	}
	return true
}

func (a *App) toggleField() {
	if a.field.Running() {
		a.field.Stop()
		return
	}
	if err := a.field.Start(a.frames); err != nil {
		a.logger.Printf("[Term] restart field: %v", err)
	}
}

// Step runs one frame: the field tick, the overlays, then a flush.
func (a *App) Step(now time.Time) {
	dt := time.Second / time.Duration(a.fps)
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick)
	}
	a.lastTick = now

	a.frames.Advance(now)
	a.counter.Step(dt)

	if a.pointer {
		a.screen.SetContent(a.pointerCol, a.pointerRow, '+', nil,
			tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255)).Bold(true))
	}
	if a.showStats {
		a.drawStatus()
	}
	a.screen.Show()
}

func (a *App) drawStatus() {
	status := fmt.Sprintf(" %s online · %d particles · %s ", a.counter, len(a.field.Particles()), a.field.Mode())
	if !a.field.Running() {
		status += "· paused "
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 221, 0))
	if !a.counter.Flashing() {
		style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 160, 200))
	}
	col := 0
	for _, r := range status {
		a.screen.SetContent(col, 0, r, nil, style)
		col++
	}
}

// Close stops the field loop. The caller owns the screen.
func (a *App) Close() {
	a.field.Stop()
}
