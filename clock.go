package menu

import "time"

// FPSLimiter paces a render loop to a target frame rate by sleeping
// away the remainder of each frame interval. It is advisory: hosts
// with their own pacing (vsync, ebiten's tick loop) simply skip it.
type FPSLimiter struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a limiter for the given rate.
// A rate of zero or less disables pacing; Wait returns immediately.
func NewFPSLimiter(fps int) *FPSLimiter {
	l := &FPSLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// Wait blocks until the current frame interval has elapsed since the
// previous Wait and marks the new frame start.
func (l *FPSLimiter) Wait() {
	now := l.now()
	if l.interval > 0 && !l.last.IsZero() {
		if d := l.interval - now.Sub(l.last); d > 0 {
			l.sleep(d)
			now = l.now()
		}
	}
	l.last = now
}
