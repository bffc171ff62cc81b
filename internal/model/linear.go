package model

import "github.com/pkg/errors"

// ErrNoSamples is returned when a gradient step is requested over no samples.
var ErrNoSamples = errors.New("model: no samples")

// LinearUnit is a single neuron with identity activation: y = w*x + b.
type LinearUnit struct {
	p Params
}

// NewLinearUnit returns a unit starting at the given parameters.
func NewLinearUnit(init Params) *LinearUnit {
	return &LinearUnit{p: init}
}

// Forward computes w*x + b.
func (u *LinearUnit) Forward(x float64) float64 {
	return u.p.W*x + u.p.B
}

// GradientWeight is dE/dw for one example with E = 0.5*(y-yTarget)^2.
func (u *LinearUnit) GradientWeight(x, y, yTarget float64) float64 {
	return x * (y - yTarget)
}

// GradientBias is dE/db for one example.
func (u *LinearUnit) GradientBias(y, yTarget float64) float64 {
	return y - yTarget
}

// ApplyGradientStep runs one full-batch epoch over samples and moves the
// parameters against the mean gradient.
func (u *LinearUnit) ApplyGradientStep(samples Samples, learningRate float64) error {
	n := samples.Len()
	if n == 0 {
		return ErrNoSamples
	}
	var sumW, sumB float64
	for i := 0; i < n; i++ {
		x, target := samples.Sample(i)
		y := u.Forward(x)
		sumW += u.GradientWeight(x, y, target)
		sumB += u.GradientBias(y, target)
	}
	u.p.W -= learningRate * (sumW / float64(n))
	u.p.B -= learningRate * (sumB / float64(n))
	return nil
}

// Params returns the current parameters.
func (u *LinearUnit) Params() Params { return u.p }

// SetParams overwrites the parameters, used to roll back a rejected step.
func (u *LinearUnit) SetParams(p Params) { u.p = p }
