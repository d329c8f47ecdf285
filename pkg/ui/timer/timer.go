// Package timer provides elapsed time tracking for command runs.
package timer

import "time"

// Timer tracks the total elapsed time of a run and the elapsed time of the
// current stage within it.
type Timer interface {
	// Start begins the run and its first stage.
	Start()

	// NewStage begins a new stage, resetting the stage clock.
	NewStage()

	// GetTiming returns the elapsed total and stage durations.
	GetTiming() (time.Duration, time.Duration)

	// Stop freezes the clocks. Subsequent GetTiming calls return the
	// durations observed at stop time.
	Stop()
}

type clockTimer struct {
	startTime time.Time
	stageTime time.Time
	stopTime  time.Time
}

// New creates a new unstarted timer.
func New() Timer {
	return &clockTimer{}
}

func (t *clockTimer) Start() {
	now := time.Now()
	t.startTime = now
	t.stageTime = now
	t.stopTime = time.Time{}
}

func (t *clockTimer) NewStage() {
	t.stageTime = time.Now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	if t.startTime.IsZero() {
		return 0, 0
	}

	now := time.Now()
	if !t.stopTime.IsZero() {
		now = t.stopTime
	}

	return now.Sub(t.startTime), now.Sub(t.stageTime)
}

func (t *clockTimer) Stop() {
	t.stopTime = time.Now()
}
