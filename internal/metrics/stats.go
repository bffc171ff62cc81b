package metrics

import "time"

// Window accumulates timing stats across multiple iterations.
type Window struct {
	samples  int
	compute  time.Duration
	steps    int
	rejected int
	lastMSE  float64
}

// Record adds one iteration to the window.
func (w *Window) Record(samples int, computeTime time.Duration, mse float64, accepted bool) {
	w.samples += samples
	w.compute += computeTime
	w.steps++
	if !accepted {
		w.rejected++
	}
	w.lastMSE = mse
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Steps: w.steps, Rejected: w.rejected}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.steps > 0 {
		snap.AvgStepMS = (w.compute.Seconds() * 1000) / float64(w.steps)
	}
	snap.LastMSE = w.lastMSE

	w.samples = 0
	w.compute = 0
	w.steps = 0
	w.rejected = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Steps         int
	Rejected      int
	SamplesPerSec float64
	AvgStepMS     float64
	LastMSE       float64
}
