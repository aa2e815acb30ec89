package engine

import "context"

// Stream is a pull-style iterator over a solve's event sequence. The
// search itself runs on its own goroutine and blocks sending on an
// unbuffered channel until Next is called, so only one of {search,
// caller} ever runs at a time — the goroutine is a mechanical device to
// turn a recursive backtracking call into a resumable generator, not a
// parallel worker (spec.md §5).
type Stream struct {
	events chan Event
	done   chan struct{}
	closed bool
}

// NewStream allocates a Stream and the done-channel used to signal
// cancellation to the producing goroutine. Concrete engines (dfs, dlx)
// call this from their Solve implementation, run their search in a new
// goroutine sending through Send, and call Close exactly once when the
// search goroutine returns.
func NewStream() *Stream {
	return &Stream{
		events: make(chan Event),
		done:   make(chan struct{}),
	}
}

// Send delivers ev to the consumer, or returns false if the stream was
// cancelled first. Producers must stop searching as soon as Send
// returns false.
func (s *Stream) Send(ctx context.Context, ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Close is called by the producing goroutine once it has emitted its
// done event (or been cancelled), releasing the events channel so
// Next's loop terminates. Close must be called exactly once.
func (s *Stream) Close() {
	close(s.events)
}

// Next blocks until the next event is available, ctx is cancelled, or
// the stream is closed. The second return value is false exactly when
// the stream has no more events (the producer already sent its done
// event and returned, or ctx was cancelled before arrival).
func (s *Stream) Next(ctx context.Context) (Event, bool) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return Event{}, false
		}
		return ev, true
	case <-ctx.Done():
		s.Cancel()
		return Event{}, false
	}
}

// Cancel signals the producing goroutine to stop at its next
// suspension point. Calling Cancel more than once is safe.
func (s *Stream) Cancel() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// Drain consumes the remaining events up to and including the done
// event (or until the stream ends) and returns them in arrival order.
func (s *Stream) Drain(ctx context.Context) []Event {
	var all []Event
	for {
		ev, ok := s.Next(ctx)
		if !ok {
			return all
		}
		all = append(all, ev)
		if ev.Type == EventDone {
			return all
		}
	}
}
