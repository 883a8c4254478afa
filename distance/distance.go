package distance

import (
	"fmt"
	"strings"

	"github.com/yurimorini/vectors"
	"github.com/yurimorini/vectors/internal/round"
)

// Dot calculates the dot product of two vectors.
func Dot(a, b vectors.Vector) float64 {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vectors.Vector) float64 {
	d := a.Subtract(b)
	return d.Dot(d)
}

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b vectors.Vector) float64 {
	return a.Subtract(b).Magnitude()
}

// Cosine calculates the cosine similarity of two vectors, clamped to [-1, 1].
// Returns vectors.ErrZeroVectorAngle if either vector is zero.
func Cosine(a, b vectors.Vector) (float64, error) {
	u, err := a.Normalize()
	if err != nil {
		return 0, vectors.ErrZeroVectorAngle
	}

	w, err := b.Normalize()
	if err != nil {
		return 0, vectors.ErrZeroVectorAngle
	}

	return round.Clamp(u.Dot(w), -1, 1), nil
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric named by s, ignoring case.
// Besides the String forms it accepts "euclidean" and "sqeuclidean".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l2", "euclidean":
		return MetricL2, nil
	case "squaredl2", "sqeuclidean":
		return MetricSquaredL2, nil
	case "cosine":
		return MetricCosine, nil
	case "dot":
		return MetricDot, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vectors.Vector) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return infallible(Euclidean), nil
	case MetricSquaredL2:
		return infallible(SquaredL2), nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return infallible(Dot), nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

func infallible(fn func(a, b vectors.Vector) float64) Func {
	return func(a, b vectors.Vector) (float64, error) {
		return fn(a, b), nil
	}
}
