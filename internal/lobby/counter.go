// Package lobby simulates the page's live statistics: a player counter that
// counts up and then drifts, and a mock leaderboard that slowly scrolls and
// reshuffles. Nothing here reflects real players.
package lobby

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iburimskiy/ambient-field/internal/config"
)

// Rand is the random source for simulated values. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Counter is the simulated live player count.
type Counter struct {
	rng Rand

	target    int
	current   float64
	countedUp bool

	sinceUpdate float64
	flashLeft   float64
}

func NewCounter(rng Rand) *Counter {
	return &Counter{rng: rng, target: config.LivePlayersTarget}
}

// Step advances the counter by one frame of dt.
func (c *Counter) Step(dt time.Duration) {
	secs := dt.Seconds()
	if c.flashLeft > 0 {
		c.flashLeft -= secs
	}

	if !c.countedUp {
		inc := float64(c.target) / config.LiveCountUpSteps
		c.current += inc + c.rng.Float64()*config.LiveCountUpJitter
		if c.current >= float64(c.target) {
			c.current = float64(c.target)
			c.countedUp = true
		}
		return
	}

	c.sinceUpdate += secs
	for c.sinceUpdate >= config.LiveUpdateSeconds {
		c.sinceUpdate -= config.LiveUpdateSeconds
		change := c.rng.IntN(config.LiveChangeSpan) - config.LiveChangeSpan/2
		c.target = max(config.LivePlayersFloor, c.target+change)
		c.current = float64(c.target)
		c.flashLeft = config.LiveFlashSeconds
	}
}

// Value is the count currently on display.
func (c *Counter) Value() int { return int(c.current) }

func (c *Counter) CountedUp() bool { return c.countedUp }

// Flashing reports whether the highlight from the last change is still on.
func (c *Counter) Flashing() bool { return c.flashLeft > 0 }

func (c *Counter) String() string { return FormatCount(c.Value()) }
