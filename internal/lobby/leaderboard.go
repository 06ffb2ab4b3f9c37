package lobby

import (
	"sort"
	"time"

	"github.com/iburimskiy/ambient-field/internal/config"
)

var playerNames = [config.LeaderboardSize]string{
	"CyberNinja", "NeonGamer", "AlphaWolf", "PixelMaster", "CodeReaper",
	"GlitchKing", "VoidWalker", "NightRider", "StormBreaker", "ShadowHunter",
	"TechSavage", "DigitalGhost", "ElectroShock", "LaserBeam", "HoloByte",
	"DataStream", "CyberPunk", "MatrixHero", "QuantumLeap", "BinaryBeast",
	"CodeMancer", "PixelPhantom", "TechTitan", "DigitalDemon", "CyberStorm",
}

type Entry struct {
	Rank   int
	Player string
	Score  int
	Level  int
}

// Leaderboard is a fixed roster with made-up scores, kept sorted by score.
type Leaderboard struct {
	rng     Rand
	entries []Entry

	scroll      int
	sinceScroll float64
	sinceBump   float64
	visibleRows int
}

func NewLeaderboard(rng Rand, visibleRows int) *Leaderboard {
	lb := &Leaderboard{rng: rng, visibleRows: visibleRows}
	lb.entries = make([]Entry, len(playerNames))
	for i, name := range playerNames {
		lb.entries[i] = Entry{
			Player: name,
			Score:  config.MinScore + rng.IntN(config.ScoreSpan),
			Level:  config.MinLevel + rng.IntN(config.LevelSpan),
		}
	}
	lb.rank()
	return lb
}

func (lb *Leaderboard) rank() {
	sort.SliceStable(lb.entries, func(i, j int) bool {
		return lb.entries[i].Score > lb.entries[j].Score
	})
	for i := range lb.entries {
		lb.entries[i].Rank = i + 1
	}
}

// Step scrolls one pixel per scroll interval, wrapping at the bottom, and
// bumps every score on each bump interval.
func (lb *Leaderboard) Step(dt time.Duration) {
	secs := dt.Seconds()

	lb.sinceScroll += secs
	for lb.sinceScroll >= config.ScrollStepSeconds {
		lb.sinceScroll -= config.ScrollStepSeconds
		lb.scroll++
		if lb.scroll >= lb.MaxScroll() {
			lb.scroll = 0
		}
	}

	lb.sinceBump += secs
	for lb.sinceBump >= config.ScoreBumpSeconds {
		lb.sinceBump -= config.ScoreBumpSeconds
		for i := range lb.entries {
			lb.entries[i].Score += lb.rng.IntN(config.ScoreBumpSpan)
		}
		lb.rank()
	}
}

// MaxScroll is the overflow height in pixels: content minus the viewport.
func (lb *Leaderboard) MaxScroll() int {
	return max(0, (len(lb.entries)-lb.visibleRows)*config.LeaderboardRowH)
}

// Scroll is the current offset in pixels.
func (lb *Leaderboard) Scroll() int { return lb.scroll }

func (lb *Leaderboard) Entries() []Entry { return lb.entries }
