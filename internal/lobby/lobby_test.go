package lobby

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/iburimskiy/ambient-field/internal/config"
)

// fixedRand returns the same draw every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int { return min(r.n, n-1) }

const frame = time.Second / 60

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{125432, "125,432"},
		{1500000, "1,500,000"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCounter_CountsUpInAboutHundredFrames(t *testing.T) {
	c := NewCounter(fixedRand{f: 0})
	frames := 0
	for !c.CountedUp() {
		c.Step(frame)
		frames++
		if frames > 200 {
			t.Fatalf("counter still counting after %d frames", frames)
		}
	}
	// float accumulation may need one extra frame to reach the target
	if frames < config.LiveCountUpSteps || frames > config.LiveCountUpSteps+1 {
		t.Errorf("count-up took %d frames, want about %d", frames, config.LiveCountUpSteps)
	}
	if c.Value() != config.LivePlayersTarget {
		t.Errorf("value = %d, want %d", c.Value(), config.LivePlayersTarget)
	}
	if c.String() != "125,432" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestCounter_DriftsEveryThreeSeconds(t *testing.T) {
	c := NewCounter(fixedRand{f: 1, n: 199}) // +99 per change
	for !c.CountedUp() {
		c.Step(frame)
	}

	c.Step(2 * time.Second)
	if c.Value() != config.LivePlayersTarget || c.Flashing() {
		t.Fatalf("changed before the interval: %d", c.Value())
	}
	c.Step(time.Second)
	if c.Value() != config.LivePlayersTarget+99 {
		t.Errorf("value = %d, want %d", c.Value(), config.LivePlayersTarget+99)
	}
	if !c.Flashing() {
		t.Errorf("expected flash right after a change")
	}
	c.Step(250 * time.Millisecond)
	if c.Flashing() {
		t.Errorf("flash should end after 200ms")
	}
}

func TestCounter_Floor(t *testing.T) {
	c := NewCounter(fixedRand{f: 1, n: 0}) // -100 per change
	for !c.CountedUp() {
		c.Step(frame)
	}
	for i := 0; i < 500; i++ {
		c.Step(3 * time.Second)
	}
	if c.Value() != config.LivePlayersFloor {
		t.Errorf("value = %d, want floor %d", c.Value(), config.LivePlayersFloor)
	}
}

func TestLeaderboard_SortedAndRanked(t *testing.T) {
	lb := NewLeaderboard(rand.New(rand.NewPCG(1, 2)), config.LeaderboardRows)
	checkRanked(t, lb)

	seen := map[string]bool{}
	for _, e := range lb.Entries() {
		if e.Score < config.MinScore || e.Score >= config.MinScore+config.ScoreSpan {
			t.Errorf("%s score %d out of range", e.Player, e.Score)
		}
		if e.Level < config.MinLevel || e.Level >= config.MinLevel+config.LevelSpan {
			t.Errorf("%s level %d out of range", e.Player, e.Level)
		}
		seen[e.Player] = true
	}
	if len(seen) != config.LeaderboardSize {
		t.Errorf("distinct players = %d, want %d", len(seen), config.LeaderboardSize)
	}

	lb.Step(10 * time.Second)
	checkRanked(t, lb)
}

func checkRanked(t *testing.T, lb *Leaderboard) {
	t.Helper()
	entries := lb.Entries()
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d rank = %d", i, e.Rank)
		}
		if i > 0 && entries[i-1].Score < e.Score {
			t.Errorf("entry %d score %d above entry %d score %d", i, e.Score, i-1, entries[i-1].Score)
		}
	}
}

func TestLeaderboard_ScoreBump(t *testing.T) {
	lb := NewLeaderboard(fixedRand{n: 7}, config.LeaderboardRows)
	before := lb.Entries()[0].Score

	lb.Step(9 * time.Second)
	if lb.Entries()[0].Score != before {
		t.Fatalf("scores changed before 10s")
	}
	lb.Step(time.Second)
	if got := lb.Entries()[0].Score; got != before+7 {
		t.Errorf("score = %d, want %d", got, before+7)
	}
}

func TestLeaderboard_ScrollWraps(t *testing.T) {
	lb := NewLeaderboard(fixedRand{}, config.LeaderboardRows)
	maxScroll := (config.LeaderboardSize - config.LeaderboardRows) * config.LeaderboardRowH
	if lb.MaxScroll() != maxScroll {
		t.Fatalf("MaxScroll() = %d, want %d", lb.MaxScroll(), maxScroll)
	}

	for i := 0; i < 20; i++ {
		lb.Step(50 * time.Millisecond)
	}
	if lb.Scroll() != 20 {
		t.Errorf("scroll after 1s = %d, want 20", lb.Scroll())
	}

	for i := 0; i < maxScroll; i++ {
		lb.Step(50 * time.Millisecond)
		if lb.Scroll() < 0 || lb.Scroll() >= maxScroll {
			t.Fatalf("scroll %d outside [0, %d)", lb.Scroll(), maxScroll)
		}
	}
}

func TestLeaderboard_NoOverflow(t *testing.T) {
	lb := NewLeaderboard(fixedRand{}, 100)
	lb.Step(5 * time.Second)
	if lb.Scroll() != 0 {
		t.Errorf("scroll = %d with nothing to scroll", lb.Scroll())
	}
}
