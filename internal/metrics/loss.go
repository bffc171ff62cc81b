package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Predictor maps a feature to a prediction.
type Predictor interface {
	Forward(x float64) float64
}

// MSE returns sum((predict(x)-target)^2) / (2*n). An empty series yields 0.
func MSE(p Predictor, features, targets []float64) float64 {
	if len(features) == 0 {
		return 0
	}
	residuals := make([]float64, len(features))
	for i, x := range features {
		residuals[i] = p.Forward(x) - targets[i]
	}
	return floats.Dot(residuals, residuals) / float64(2*len(residuals))
}

// RSquared reports the coefficient of determination of the line
// y = weight*x + bias over the given series.
func RSquared(features, targets []float64, weight, bias float64) float64 {
	if len(features) < 2 {
		return 0
	}
	return stat.RSquared(features, targets, nil, bias, weight)
}
