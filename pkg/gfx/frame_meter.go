package gfx

import "time"

type frameMeter struct {
	interval time.Duration
	since    time.Time
	frames   uint64
	report   func(frames uint64, elapsed time.Duration)
}

func newFrameMeter(
	interval time.Duration,
	now time.Time,
	report func(frames uint64, elapsed time.Duration),
) *frameMeter {
	if interval <= 0 {
		interval = time.Second
	}
	return &frameMeter{
		interval: interval,
		since:    now,
		report:   report,
	}
}

func (m *frameMeter) tick(now time.Time) {
	m.frames++
	elapsed := now.Sub(m.since)
	if elapsed < m.interval {
		return
	}
	if m.report != nil {
		m.report(m.frames, elapsed)
	}
	m.frames = 0
	m.since = now
}

func framesPerSecond(frames uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}
