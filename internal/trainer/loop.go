package trainer

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/pkg/errors"

	"linfit/internal/dataset"
	"linfit/internal/metrics"
	"linfit/internal/model"
)

// DefaultMaxIterations bounds a run that keeps improving.
const DefaultMaxIterations = 100

// ErrNoExamples is returned when training is started on an empty dataset.
var ErrNoExamples = errors.New("trainer: dataset has no examples")

// State is the position of a run in the training state machine.
type State int

const (
	Running State = iota
	// Converged means a step failed to reduce the error and was rolled back.
	Converged
	// Exhausted means the iteration budget ran out while still improving.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	MaxIterations int
	LearningRate  float64
	LogEvery      int
}

// Result is the outcome of a run.
type Result struct {
	Params     model.Params
	State      State
	Iterations int // gradient steps attempted, including a rolled back one
	InitialMSE float64
	FinalMSE   float64
	// History holds the baseline MSE followed by every accepted MSE.
	History  []float64
	RSquared float64
}

// Run trains m on ds until a step stops improving the error or the
// iteration budget is spent. On return m holds the last accepted parameters.
func Run(ctx context.Context, cfg RunConfig, ds *dataset.Dataset, m model.Model) (Result, error) {
	if ds.Len() == 0 {
		return Result{}, ErrNoExamples
	}
	if cfg.LearningRate <= 0 {
		return Result{}, errors.Errorf("trainer: learning rate must be > 0 (got %g)", cfg.LearningRate)
	}
	if cfg.MaxIterations <= 0 {
		return Result{}, errors.Errorf("trainer: max iterations must be > 0 (got %d)", cfg.MaxIterations)
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 10
	}

	features, targets := ds.Features(), ds.Targets()
	prevMSE := metrics.MSE(m, features, targets)
	snapshot := m.Params()

	res := Result{
		State:      Running,
		InitialMSE: prevMSE,
		History:    []float64{prevMSE},
	}
	var window metrics.Window

	for res.State == Running {
		if res.Iterations >= cfg.MaxIterations {
			res.State = Exhausted
			break
		}
		if err := ctx.Err(); err != nil {
			res.Params, res.FinalMSE = snapshot, prevMSE
			return res, err
		}
		res.Iterations++

		start := time.Now()
		if err := m.ApplyGradientStep(ds, cfg.LearningRate); err != nil {
			m.SetParams(snapshot)
			return res, errors.Wrapf(err, "iteration %d", res.Iterations)
		}
		mse := metrics.MSE(m, features, targets)
		computeTime := time.Since(start)

		accepted := improves(mse, prevMSE)
		if accepted {
			prevMSE = mse
			snapshot = m.Params()
			res.History = append(res.History, mse)
		} else {
			m.SetParams(snapshot)
			res.State = Converged
			log.Printf("iteration=%d rejected mse=%.6g prev_mse=%.6g, rolled back", res.Iterations, mse, prevMSE)
		}
		window.Record(ds.Len(), computeTime, prevMSE, accepted)

		if res.Iterations%cfg.LogEvery == 0 {
			snap := window.Snapshot()
			log.Printf("iteration=%d steps=%d rejected=%d w=%.6g b=%.6g mse=%.6g step_ms=%.3f samples_per_sec=%.1f",
				res.Iterations,
				snap.Steps,
				snap.Rejected,
				snapshot.W,
				snapshot.B,
				snap.LastMSE,
				snap.AvgStepMS,
				snap.SamplesPerSec,
			)
		}
	}

	res.Params = snapshot
	res.FinalMSE = prevMSE
	res.RSquared = metrics.RSquared(features, targets, snapshot.W, snapshot.B)
	return res, nil
}

// improves reports whether next is strictly smaller in magnitude than prev.
// NaN never improves.
func improves(next, prev float64) bool {
	if math.IsNaN(next) {
		return false
	}
	return math.Abs(next) < math.Abs(prev)
}
