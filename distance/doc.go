// Package distance provides pairwise measures between vectors.
//
// Operands of different dimensions are zero-padded to the longer one, like
// every two-vector operation of the vectors package.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricSquaredL2: Squared Euclidean distance
//   - MetricCosine: Cosine similarity (dot product of the normalized operands)
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist := distance.Euclidean(a, b)
//	sim, err := distance.Cosine(a, b)
//	fn, err := distance.Provider(distance.MetricL2)
package distance
