package lav

import "time"

// Timer tracks frame timing for the update/draw loop: elapsed time since
// start, the delta of the last frame, and the derived frame rate.
type Timer struct {
	start     time.Time
	lastFrame time.Time
	dt        float64
}

// NewTimer creates a timer whose epoch is the moment of the call.
func NewTimer() *Timer {
	now := time.Now()
	return &Timer{
		start:     now,
		lastFrame: now,
	}
}

// Step advances the frame: the time elapsed since the previous Step (or
// since construction, for the first frame) becomes the new delta.
func (t *Timer) Step() {
	now := time.Now()
	t.dt = now.Sub(t.lastFrame).Seconds()
	t.lastFrame = now
}

// Time returns the seconds elapsed since the timer was created.
func (t *Timer) Time() float64 {
	return time.Since(t.start).Seconds()
}

// FPS returns the frame rate derived from the last delta, or 0 before the
// first Step.
func (t *Timer) FPS() float64 {
	if t.dt == 0 {
		return 0
	}
	return 1 / t.dt
}

// Delta returns the duration of the last frame in seconds.
func (t *Timer) Delta() float64 {
	return t.dt
}

// Sleep blocks the calling goroutine for the given number of seconds.
func (t *Timer) Sleep(seconds float64) {
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}
