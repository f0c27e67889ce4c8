package loop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStopEndsLoop(t *testing.T) {
	var calls atomic.Int64
	h := Start(context.Background(), time.Millisecond, func(uint64) bool {
		calls.Add(1)
		return true
	})

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	h.Stop()

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "frame callback ran after Stop")
	assert.ErrorIs(t, h.Err(), context.Canceled)
	assert.Equal(t, uint64(after), h.Frames())
}

func TestStopIsIdempotent(t *testing.T) {
	h := Start(context.Background(), time.Millisecond, func(uint64) bool { return true })
	h.Stop()
	h.Stop()

	select {
	case <-h.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
}

func TestCallbackEndsLoop(t *testing.T) {
	var seen []uint64
	h := Start(context.Background(), time.Millisecond, func(frame uint64) bool {
		seen = append(seen, frame)
		return frame < 4
	})

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not end on its own")
	}
	h.Stop()

	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, seen)
	assert.NoError(t, h.Err())
}

func TestParentContextCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, time.Millisecond, func(uint64) bool { return true })
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("loop ignored parent cancellation")
	}
	assert.ErrorIs(t, h.Err(), context.Canceled)
	h.Stop()
}

func TestInterval(t *testing.T) {
	assert.Equal(t, time.Second/30, Interval(30))
	assert.Equal(t, time.Second/DefaultFPS, Interval(0))
	assert.Equal(t, time.Second/DefaultFPS, Interval(-5))
}

func TestErrBeforeDone(t *testing.T) {
	h := Start(context.Background(), time.Hour, func(uint64) bool { return true })
	assert.NoError(t, h.Err())
	h.Stop()
	assert.ErrorIs(t, h.Err(), context.Canceled)
}
