package model

// Samples is a read-only indexed view of (feature, target) pairs.
type Samples interface {
	Len() int
	Sample(i int) (feature, target float64)
}

// Params is a snapshot of a unit's trainable parameters.
type Params struct {
	W float64
	B float64
}

// Model defines the training functionality required by the trainer loop.
type Model interface {
	Forward(x float64) float64
	ApplyGradientStep(samples Samples, learningRate float64) error
	Params() Params
	SetParams(p Params)
}
