// Package field implements the ambient particle field: a population of
// drifting, pulsing particles that react to the pointer and are linked by
// faint lines when close to each other.
package field

import (
	"errors"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/ambient-field/internal/config"
)

var (
	ErrNoCanvas    = errors.New("field: no canvas")
	ErrNoViewport  = errors.New("field: canvas has no viewport size")
	ErrNoScheduler = errors.New("field: no scheduler")
	ErrRunning     = errors.New("field: already running")
)

// Mode selects how per-tick increments relate to wall-clock time.
type Mode int

const (
	// PerFrame applies fixed increments every tick regardless of elapsed
	// time, so motion speed follows the display refresh rate.
	PerFrame Mode = iota
	// DeltaTime scales increments by elapsed time relative to a 60 Hz frame.
	DeltaTime
)

func (m Mode) String() string {
	if m == DeltaTime {
		return config.PhysicsDeltaTime
	}
	return config.PhysicsPerFrame
}

// ParseMode maps a settings value to a Mode.
func ParseMode(s string) Mode {
	if s == config.PhysicsDeltaTime {
		return DeltaTime
	}
	return PerFrame
}

// Rand is the random source used to seed particles. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type pointer struct {
	x, y float64
	seen bool
}

// Field owns the particle population and the per-frame loop.
type Field struct {
	canvas Canvas
	rng    Rand
	mode   Mode
	logger *log.Logger

	width, height float64
	particles     []Particle
	pointer       pointer

	lastTick  time.Time
	scheduler Scheduler
	handle    Handle
}

type Option func(*Field)

func WithRand(r Rand) Option { return func(f *Field) { f.rng = r } }

func WithSeed(seed uint64) Option {
	return func(f *Field) { f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithMode(m Mode) Option { return func(f *Field) { f.mode = m } }

func WithLogger(l *log.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a field sized to the canvas viewport and seeds its particles.
func New(canvas Canvas, opts ...Option) (*Field, error) {
	if canvas == nil {
		return nil, ErrNoCanvas
	}
	if w, h := canvas.Size(); w <= 0 || h <= 0 {
		return nil, ErrNoViewport
	}

	f := &Field{
		canvas: canvas,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		seed := uint64(time.Now().UnixNano())
		f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	f.Init()
	return f, nil
}

// Init reads the viewport size and replaces the population.
func (f *Field) Init() {
	w, h := f.canvas.Size()
	f.width, f.height = float64(max(w, 0)), float64(max(h, 0))

	n := int(math.Floor(f.width * f.height / config.DensityDivisor))
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = f.newParticle()
	}
	f.particles = particles

	f.logger.Printf("[Field] seeded %d particles for %dx%d (%s)", n, w, h, f.mode)
}

// Resize discards every particle and reseeds for the current viewport.
func (f *Field) Resize() { f.Init() }

func (f *Field) newParticle() Particle {
	size := uniform(f.rng, config.MinSize, config.MaxSize)
	return Particle{
		X:         f.rng.Float64() * f.width,
		Y:         f.rng.Float64() * f.height,
		VX:        uniform(f.rng, config.MinSpeed, config.MaxSpeed),
		VY:        uniform(f.rng, config.MinSpeed, config.MaxSpeed),
		Size:      size,
		Radius:    size,
		Color:     Palette[f.rng.IntN(len(Palette))],
		Alpha:     uniform(f.rng, config.MinInitialAlpha, config.MaxInitialAlpha),
		PulseFreq: uniform(f.rng, config.MinPulseFreq, config.MaxPulseFreq),
	}
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// PointerMove records the pointer position. It is read on the next Update.
func (f *Field) PointerMove(x, y float64) {
	f.pointer = pointer{x: x, y: y, seen: true}
}

// PointerLeave stops pointer interaction until the next PointerMove.
func (f *Field) PointerLeave() {
	f.pointer.seen = false
}

// Particles exposes the live population. Callers must not retain it across
// a Resize.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Size() (width, height float64) { return f.width, f.height }

func (f *Field) Mode() Mode { return f.mode }

// Update advances every particle by one tick.
func (f *Field) Update(now time.Time) {
	step := f.stepScale(now)
	f.lastTick = now
	ms := float64(now.UnixNano()) / float64(time.Millisecond)

	for i := range f.particles {
		p := &f.particles[i]

		if step > 0 {
			p.X += p.VX * step
			p.Y += p.VY * step
			f.applyPointer(p, step)

			friction := config.Friction
			if step != 1 {
				friction = math.Pow(config.Friction, step)
			}
			p.VX *= friction
			p.VY *= friction
		}

		pulse := math.Sin(ms*p.PulseFreq) * config.PulseAmplitude
		p.Radius = math.Max(config.MinRadius, p.Size+pulse)

		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
			p.X = clamp(p.X, 0, f.width)
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
			p.Y = clamp(p.Y, 0, f.height)
		}
	}
}

// stepScale is 1 in PerFrame mode. In DeltaTime mode it is the elapsed time
// in nominal frames, capped so a stalled frame cannot fling particles.
func (f *Field) stepScale(now time.Time) float64 {
	if f.mode == PerFrame {
		return 1
	}
	if f.lastTick.IsZero() {
		return 1
	}
	frames := now.Sub(f.lastTick).Seconds() / config.FrameSeconds
	return clamp(frames, 0, config.MaxStepFrames)
}

func (f *Field) applyPointer(p *Particle, step float64) {
	if f.pointer.seen {
		dx := f.pointer.x - p.X
		dy := f.pointer.y - p.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d < config.ProximityThreshold {
			force := (config.ProximityThreshold - d) / config.ProximityThreshold
			if d > 0 {
				p.VX += dx / d * force * config.PointerCoefficient * step
				p.VY += dy / d * force * config.PointerCoefficient * step
			}
			p.Alpha = math.Min(config.MaxAlpha, p.Alpha+force*config.AlphaGain*step)
			return
		}
	}
	p.Alpha = math.Max(config.MinAlpha, p.Alpha-config.AlphaDecay*step)
}

// Render clears the canvas and draws every particle, then the links between
// each pair closer than the proximity threshold.
func (f *Field) Render() {
	f.canvas.Clear()

	for _, p := range f.particles {
		f.canvas.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Alpha, config.ParticleBlur)
	}

	// O(n²); n stays in the tens to low hundreds at this density.
	for i := range f.particles {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := distance(a.X, a.Y, b.X, b.Y)
			if d >= config.ProximityThreshold {
				continue
			}
			alpha := (config.ProximityThreshold - d) / config.ProximityThreshold * config.LinkMaxAlpha
			f.canvas.StrokeLine(a.X, a.Y, b.X, b.Y, config.LinkWidth, a.Color, alpha, config.LinkBlur)
		}
	}
}

// Start schedules the first tick. Every tick updates, renders and schedules
// the next one until Stop.
func (f *Field) Start(s Scheduler) error {
	if s == nil {
		return ErrNoScheduler
	}
	if f.Running() {
		return ErrRunning
	}
	f.scheduler = s
	f.handle = s.RequestTick(f.tick)
	return nil
}

func (f *Field) tick(now time.Time) {
	f.handle = 0
	f.Update(now)
	f.Render()
	if f.scheduler != nil {
		f.handle = f.scheduler.RequestTick(f.tick)
	}
}

// Stop cancels the pending tick. It is safe to call on a stopped field.
func (f *Field) Stop() {
	if f.scheduler == nil {
		return
	}
	if f.handle != 0 {
		f.scheduler.CancelTick(f.handle)
	}
	f.scheduler = nil
	f.handle = 0
	f.lastTick = time.Time{}
}

func (f *Field) Running() bool { return f.scheduler != nil }
