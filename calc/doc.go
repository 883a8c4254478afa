// Package calc reduces collections of vectors into a single vector.
//
// Every reduction zero-pads its inputs against the largest dimension among
// them, exactly like the two-vector operations of the vectors package. The
// functions are stateless and never modify their arguments.
//
// # Usage
//
//	sum, err := calc.Sum(a, b, c)
//	diff, err := calc.Difference(a, b, c) // a - b - c
//	scaled := calc.Scale(2, a)
//
// Reducing an empty collection yields no coordinates and fails with
// vectors.ErrEmptyVector.
package calc
