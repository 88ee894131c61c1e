// Package timing measures frame times and frames per second for the render
// loop.
package timing

import "time"

// MaxDelta caps the frame time Tick reports so a stall does not teleport
// the camera.
const MaxDelta = 50 * time.Millisecond

// FrameTimer tracks the time between frames. FPS is the number of frames
// ticked during the last complete second.
type FrameTimer struct {
	now func() time.Time

	start     time.Time
	last      time.Time
	fpsStart  time.Time
	fpsFrames int
	fps       int
	frames    int
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{now: time.Now}
}

// Start resets the timer. The first Tick measures from here.
func (t *FrameTimer) Start() {
	now := t.now()
	t.start = now
	t.last = now
	t.fpsStart = now
	t.fpsFrames = 0
	t.fps = 0
	t.frames = 0
}

// Tick marks the end of a frame and returns its duration in seconds, capped
// at MaxDelta.
func (t *FrameTimer) Tick() float32 {
	now := t.now()
	delta := min(now.Sub(t.last), MaxDelta)
	t.last = now
	t.frames++

	t.fpsFrames++
	if now.Sub(t.fpsStart) >= time.Second {
		t.fps = t.fpsFrames
		t.fpsFrames = 0
		t.fpsStart = now
	}

	return float32(delta.Seconds())
}

// Elapsed returns the time since Start.
func (t *FrameTimer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

func (t *FrameTimer) FPS() int {
	return t.fps
}

// Frames returns the number of ticks since Start.
func (t *FrameTimer) Frames() int {
	return t.frames
}
