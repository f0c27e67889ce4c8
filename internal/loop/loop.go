// Package loop runs a per-frame callback on a fixed interval until it is
// cancelled. Starting a loop returns a [Handle]; the owner must call
// [Handle.Stop] on teardown.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultFPS = 60

// FrameFunc is called once per frame. Returning false ends the loop.
type FrameFunc func(frame uint64) bool

// Handle controls a running loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	frames atomic.Uint64
	once   sync.Once
	err    error
}

// Interval converts a frame rate to a tick interval, falling back to
// DefaultFPS for non-positive rates.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Start calls fn every interval on a new goroutine.
func Start(ctx context.Context, interval time.Duration, fn FrameFunc) *Handle {
	if interval <= 0 {
		interval = Interval(DefaultFPS)
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				h.err = ctx.Err()
				return
			case <-ticker.C:
			}
			// a tick and a cancel can be ready together
			if ctx.Err() != nil {
				h.err = ctx.Err()
				return
			}
			n := h.frames.Add(1) - 1
			if !fn(n) {
				return
			}
		}
	}()

	return h
}

// Stop cancels the loop and waits for its goroutine to exit. No frame
// callback runs after Stop returns. Stop is idempotent.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed when the loop has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Frames is the number of frame callbacks started so far.
func (h *Handle) Frames() uint64 { return h.frames.Load() }

// Err reports why the loop ended: nil when the callback ended it, the
// context error when it was cancelled. Valid once Done is closed.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
