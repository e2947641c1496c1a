// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service. The elapsed clock starts now.
func NewTime(cfg TimeConfiguration) *Time {
	var interval time.Duration
	if cfg.FramesPerSecond == 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / time.Duration(cfg.FramesPerSecond)
	}

	return &Time{
		fps:       cfg.FramesPerSecond,
		fpsTicker: time.NewTicker(interval),
		start:     time.Now(),
	}
}

// Time contains the frame pacing ticker and the elapsed clock feeding
// the t uniform.
type Time struct {
	fps       int
	fpsTicker *time.Ticker
	start     time.Time
}

// Fps gets the set frames per second.
func (t *Time) Fps() int {
	return t.fps
}

// FpsTicker gets the initialized fps ticker.
func (t *Time) FpsTicker() *time.Ticker {
	return t.fpsTicker
}

// Elapsed returns seconds since the service was created.
func (t *Time) Elapsed() float32 {
	return float32(time.Since(t.start).Seconds())
}

// Stop stops the ticker.
func (t *Time) Stop() {
	t.fpsTicker.Stop()
}
