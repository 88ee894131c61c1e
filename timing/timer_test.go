package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestTimer() (*FrameTimer, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	timer := NewFrameTimer()
	timer.now = clock.now
	timer.Start()
	return timer, clock
}

func TestFrameTimerTick(t *testing.T) {
	timer, clock := newTestTimer()

	clock.advance(16 * time.Millisecond)
	require.InDelta(t, 0.016, timer.Tick(), 1e-6)

	clock.advance(time.Second)
	require.InDelta(t, MaxDelta.Seconds(), timer.Tick(), 1e-6)

	require.Equal(t, 2, timer.Frames())
	require.Equal(t, time.Second+16*time.Millisecond, timer.Elapsed())
}

func TestFrameTimerFPS(t *testing.T) {
	timer, clock := newTestTimer()
	require.Zero(t, timer.FPS())

	for range 49 {
		clock.advance(20 * time.Millisecond)
		timer.Tick()
	}
	require.Zero(t, timer.FPS(), "no complete second yet")

	clock.advance(20 * time.Millisecond)
	timer.Tick()
	require.Equal(t, 50, timer.FPS())

	for range 25 {
		clock.advance(40 * time.Millisecond)
		timer.Tick()
	}
	require.Equal(t, 25, timer.FPS())
}

func TestFrameTimerStartResets(t *testing.T) {
	timer, clock := newTestTimer()

	clock.advance(3 * time.Second)
	timer.Tick()
	timer.Start()

	require.Zero(t, timer.Frames())
	require.Zero(t, timer.FPS())
	require.Zero(t, timer.Elapsed())
}
