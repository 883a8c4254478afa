// Package vectors provides real-valued n-dimensional vector algebra.
//
// A Vector is an immutable, fixed-dimension sequence of float64 coordinates.
// Every operation returns a new Vector or a scalar; neither the receiver nor
// the arguments are ever modified, so Vectors can be shared freely between
// goroutines.
//
// # Zero Padding
//
// Reading a coordinate at or beyond the dimension yields 0. Two-vector
// operations therefore accept operands of different dimensions: the shorter
// one behaves as if it were zero-extended to the longer one.
//
// # Quick Start
//
//	a := vectors.MustNew(3.039, 1.879)
//	b := vectors.MustNew(0.825, 2.036)
//
//	sum := a.Add(b)
//	dot := a.Dot(b)
//	theta, err := a.Angle(b, vectors.InDegrees())
//	proj, err := a.ParallelComponentTo(b)
//
// # Tolerances and Rounding
//
// Approximate comparisons use DefaultTolerance (1e-10) unless WithTolerance
// is passed. Rounding helpers default to DefaultPrecision (3) fractional
// digits and can be changed with WithPrecision.
//
// # Errors
//
// Failures are reported as a small closed set of error kinds that can be
// discriminated with errors.Is:
//
//   - ErrEmptyVector: construction without coordinates
//   - ErrZeroVectorNormalize: normalizing the zero vector
//   - ErrZeroVectorAngle: angle with the zero vector
//   - ErrNoUniqueParallelComponent: projection onto the zero vector
//   - ErrNoUniqueOrthogonalComponent: perpendicular component against the zero vector
//   - ErrCrossProductDimension: cross product above three dimensions
//
// Aggregate operations over many vectors live in the calc subpackage, and
// pairwise metrics in the distance subpackage.
package vectors
