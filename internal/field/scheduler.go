package field

import "time"

// TickFunc is called once per display frame with the frame timestamp.
type TickFunc func(now time.Time)

// Handle identifies a pending tick request. The zero Handle is never issued.
type Handle uint64

// Scheduler hands out per-frame callbacks, the way a browser's animation
// frame queue does.
type Scheduler interface {
	RequestTick(fn TickFunc) Handle
	CancelTick(h Handle)
}

// FrameScheduler is a Scheduler driven by an explicit Advance call. Front
// ends call Advance once per frame; tests call it with synthetic times.
type FrameScheduler struct {
	next    Handle
	pending map[Handle]TickFunc
	order   []Handle
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{pending: make(map[Handle]TickFunc)}
}

func (s *FrameScheduler) RequestTick(fn TickFunc) Handle {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

func (s *FrameScheduler) CancelTick(h Handle) {
	delete(s.pending, h)
}

// Pending reports how many callbacks will run on the next Advance.
func (s *FrameScheduler) Pending() int { return len(s.pending) }

// Advance runs, in request order, every callback requested before the call.
// Callbacks requested while advancing run on the following Advance.
func (s *FrameScheduler) Advance(now time.Time) int {
	batch := s.order
	s.order = nil

	ran := 0
	for _, h := range batch {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn(now)
		ran++
	}
	return ran
}
