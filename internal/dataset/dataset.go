package dataset

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultCapacity is the number of samples a Dataset holds when no capacity is given.
const DefaultCapacity = 100

var (
	// ErrCapacityExceeded is returned by Add once the dataset is full.
	ErrCapacityExceeded = errors.New("dataset: capacity exceeded")
	// ErrEmpty is returned by operations that need at least one sample.
	ErrEmpty = errors.New("dataset: no samples")
	// ErrInvalidRange is returned by Rescale when from >= to.
	ErrInvalidRange = errors.New("dataset: invalid scaling range")
	// ErrNonFinite is returned by Add for NaN or infinite values.
	ErrNonFinite = errors.New("dataset: non-finite value")
)

// InvariantViolation is the panic value raised when a precondition that only
// a programming error can break does not hold.
type InvariantViolation struct {
	Op  string
	Msg string
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("dataset: %s: invariant violated: %s", v.Op, v.Msg)
}

// Sample is a single (feature, target) pair.
type Sample struct {
	Feature float64
	Target  float64
}

// Bounds holds the per-column extrema of a non-empty dataset.
type Bounds struct {
	FeatureMin, FeatureMax float64
	TargetMin, TargetMax   float64
}

// Dataset is a fixed-capacity, insertion-ordered collection of samples that
// tracks the running extrema of both columns.
type Dataset struct {
	capacity int
	features []float64
	targets  []float64
	bounds   Bounds
}

// New returns an empty dataset holding at most capacity samples.
func New(capacity int) *Dataset {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Dataset{
		capacity: capacity,
		features: make([]float64, 0, capacity),
		targets:  make([]float64, 0, capacity),
	}
}

// Add appends a sample. A full dataset is left untouched.
func (d *Dataset) Add(feature, target float64) error {
	if len(d.features) >= d.capacity {
		return errors.Wrapf(ErrCapacityExceeded, "limit %d", d.capacity)
	}
	if !finite(feature) || !finite(target) {
		return errors.Wrapf(ErrNonFinite, "(%g, %g)", feature, target)
	}
	if len(d.features) == 0 {
		d.bounds = Bounds{
			FeatureMin: feature, FeatureMax: feature,
			TargetMin: target, TargetMax: target,
		}
	} else {
		d.bounds.FeatureMin = min(d.bounds.FeatureMin, feature)
		d.bounds.FeatureMax = max(d.bounds.FeatureMax, feature)
		d.bounds.TargetMin = min(d.bounds.TargetMin, target)
		d.bounds.TargetMax = max(d.bounds.TargetMax, target)
	}
	d.features = append(d.features, feature)
	d.targets = append(d.targets, target)
	return nil
}

// Rescale maps both columns independently. For a column with extrema min and
// max every value v becomes (v-min)*scale where scale = to/(max-min) + from.
// That is not the textbook (to-from)/(max-min) and training results depend on
// the difference.
//
// A column with zero spread panics with InvariantViolation.
func (d *Dataset) Rescale(from, to float64) error {
	if len(d.features) == 0 {
		return ErrEmpty
	}
	if from >= to {
		return errors.Wrapf(ErrInvalidRange, "from=%g to=%g", from, to)
	}
	b := d.bounds
	if b.FeatureMax == b.FeatureMin {
		panic(InvariantViolation{Op: "rescale", Msg: fmt.Sprintf("feature column has zero spread (all %g)", b.FeatureMin)})
	}
	if b.TargetMax == b.TargetMin {
		panic(InvariantViolation{Op: "rescale", Msg: fmt.Sprintf("target column has zero spread (all %g)", b.TargetMin)})
	}

	featureScale := to/(b.FeatureMax-b.FeatureMin) + from
	targetScale := to/(b.TargetMax-b.TargetMin) + from

	floats.AddConst(-b.FeatureMin, d.features)
	floats.Scale(featureScale, d.features)
	floats.AddConst(-b.TargetMin, d.targets)
	floats.Scale(targetScale, d.targets)

	d.bounds = Bounds{
		FeatureMin: floats.Min(d.features), FeatureMax: floats.Max(d.features),
		TargetMin: floats.Min(d.targets), TargetMax: floats.Max(d.targets),
	}
	return nil
}

// Len returns the number of stored samples.
func (d *Dataset) Len() int { return len(d.features) }

// Cap returns the maximum number of samples.
func (d *Dataset) Cap() int { return d.capacity }

// Sample returns the i-th stored pair.
func (d *Dataset) Sample(i int) (feature, target float64) {
	return d.features[i], d.targets[i]
}

// Features returns a copy of the feature column in insertion order.
func (d *Dataset) Features() []float64 {
	return append([]float64(nil), d.features...)
}

// Targets returns a copy of the target column in insertion order.
func (d *Dataset) Targets() []float64 {
	return append([]float64(nil), d.targets...)
}

// Bounds reports the current extrema. ok is false while the dataset is empty.
func (d *Dataset) Bounds() (b Bounds, ok bool) {
	if len(d.features) == 0 {
		return Bounds{}, false
	}
	return d.bounds, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
