package calc

import (
	"github.com/yurimorini/vectors"
)

// MaxDimension returns the largest dimension among vs, or 0 if vs is empty.
func MaxDimension(vs ...vectors.Vector) int {
	n := 0
	for _, v := range vs {
		n = max(n, v.Dimension())
	}

	return n
}

// Sum returns the coordinate-wise sum of vs.
func Sum(vs ...vectors.Vector) (vectors.Vector, error) {
	coords := make([]float64, MaxDimension(vs...))
	for i := range coords {
		for _, v := range vs {
			coords[i] += v.At(i)
		}
	}

	return vectors.New(coords...)
}

// Difference returns vs[0] minus every following vector, in order.
func Difference(vs ...vectors.Vector) (vectors.Vector, error) {
	coords := make([]float64, MaxDimension(vs...))
	for i := range coords {
		coords[i] = vs[0].At(i)
		for _, v := range vs[1:] {
			coords[i] -= v.At(i)
		}
	}

	return vectors.New(coords...)
}

// Scale returns v multiplied by factor.
func Scale(factor float64, v vectors.Vector) vectors.Vector {
	return v.Scale(factor)
}
