package app

import (
	"time"
)

// Time is the frame clock. Dt is the time since the previous frame.
type Time struct {
	Start time.Time
	Time  time.Time
	Dt    time.Duration

	Frames uint64
	// FPS is averaged over the last whole second.
	FPS float64

	windowStart  time.Time
	windowFrames uint64
}

func (t *Time) Elapsed() time.Duration {
	return t.Time.Sub(t.Start)
}

// TimeModule keeps Time current and, with debug logging enabled, reports the
// frame rate once a second.
type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Time{
		Start:       now,
		Time:        now,
		windowStart: now,
	})
	cmd.UseSystem(System(timeSystem).InStage(PreUpdate))

	if log := logger(app); log.DebugEnabled() {
		cmd.UseSystem(System(func(t *Time) {
			if t.windowFrames == 0 && t.Frames > 0 {
				log.Debugf("%.1f fps, frame %d", t.FPS, t.Frames)
			}
		}).InStage(PostRender))
	}
}

func timeSystem(timeResource *Time) {
	advanceTime(timeResource, time.Now())
}

func advanceTime(t *Time, now time.Time) {
	t.Dt = now.Sub(t.Time)
	t.Time = now
	t.Frames++

	t.windowFrames++
	if window := now.Sub(t.windowStart); window >= time.Second {
		t.FPS = float64(t.windowFrames) / window.Seconds()
		t.windowFrames = 0
		t.windowStart = now
	}
}
