package field

import (
	"testing"
	"time"
)

func TestFrameScheduler_RunsInRequestOrder(t *testing.T) {
	s := NewFrameScheduler()
	var got []int
	for i := 1; i <= 3; i++ {
		i := i
		s.RequestTick(func(time.Time) { got = append(got, i) })
	}

	if ran := s.Advance(time.Now()); ran != 3 {
		t.Fatalf("Advance ran %d, want 3", ran)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", got)
	}
	if s.Advance(time.Now()) != 0 {
		t.Errorf("callbacks ran twice")
	}
}

func TestFrameScheduler_RequestDuringAdvanceWaits(t *testing.T) {
	s := NewFrameScheduler()
	calls := 0
	var tick TickFunc
	tick = func(time.Time) {
		calls++
		s.RequestTick(tick)
	}
	s.RequestTick(tick)

	s.Advance(time.Now())
	if calls != 1 {
		t.Fatalf("calls after one Advance = %d, want 1", calls)
	}
	s.Advance(time.Now())
	if calls != 2 {
		t.Fatalf("calls after two Advances = %d, want 2", calls)
	}
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler()
	ran := false
	h := s.RequestTick(func(time.Time) { ran = true })
	if h == 0 {
		t.Fatalf("RequestTick returned the zero handle")
	}
	s.CancelTick(h)
	s.CancelTick(h)

	if n := s.Advance(time.Now()); n != 0 || ran {
		t.Errorf("cancelled callback ran (n=%d)", n)
	}
}

func TestFrameScheduler_PassesTimestamp(t *testing.T) {
	s := NewFrameScheduler()
	want := time.Unix(1234, 5678)
	var got time.Time
	s.RequestTick(func(now time.Time) { got = now })
	s.Advance(want)
	if !got.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got, want)
	}
}
