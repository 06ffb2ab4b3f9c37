// Package audio plays the optional ambient soundtrack and exposes its
// loudness for the HUD meter.
package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/ambient-field/internal/config"
)

var ErrUnsupported = errors.New("audio: unsupported file type")

// Extensions lists the file patterns the player can decode.
var Extensions = []string{"*.wav", "*.mp3", "*.flac"}

// Player owns at most one playing track at a time.
type Player struct {
	logger *log.Logger

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *tap
	finished atomic.Bool

	speakerRate beep.SampleRate
	initDone    bool
	paused      bool
	level       float64
	track       string
}

func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Player{logger: logger}
}

// decode opens path and picks a decoder by extension.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, nil
}

// Load stops the current track, decodes path and starts playing it.
func (p *Player) Load(path string) error {
	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	t := newTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("speaker init: %w", err)
		}
		p.initDone = true
		p.speakerRate = format.SampleRate
	case p.speakerRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("speaker init: %w", err)
		}
		p.speakerRate = format.SampleRate
	default:
		speaker.Clear()
	}
	p.release()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false
	p.level = 0
	p.track = filepath.Base(path)
	p.finished.Store(false)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.finished.Store(true)
	})))

	p.logger.Printf("[Audio] playing %s (%d Hz, %s)", p.track, format.SampleRate, p.Duration())
	return nil
}

// Update runs once per UI frame: it closes a finished track and refreshes
// the smoothed level.
func (p *Player) Update() {
	if p.streamer == nil {
		return
	}
	if p.finished.Load() {
		p.logger.Printf("[Audio] finished %s", p.track)
		p.release()
		return
	}
	if p.paused {
		p.level = smooth(p.level, 0)
		return
	}
	mag := math.Pow(rms(p.tap.snapshot(2048)), 0.3)
	p.level = smooth(p.level, mag)
}

func smooth(prev, next float64) float64 {
	return config.SmoothingFactor*prev + (1-config.SmoothingFactor)*next
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *Player) Playing() bool { return p.streamer != nil }

func (p *Player) Paused() bool { return p.paused }

func (p *Player) Track() string { return p.track }

// Level is the compressed, smoothed loudness in [0, 1].
func (p *Player) Level() float64 { return math.Min(1, p.level) }

func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *Player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.paused = false
	p.level = 0
}

// Close stops playback and shuts the speaker down.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.release()
	if p.initDone {
		speaker.Close()
		p.initDone = false
	}
}
