package vectors

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/yurimorini/vectors/internal/round"
)

// crossDimension is the largest dimension a cross product operand may have.
const crossDimension = 3

// Vector is an immutable real vector of fixed dimension.
//
// The zero value has no coordinates and is not a valid Vector; use New.
type Vector struct {
	coords []float64
}

// New creates a vector from the given coordinates.
// It returns ErrEmptyVector if no coordinates are given.
func New(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyVector
	}

	return Vector{coords: slices.Clone(coords)}, nil
}

// MustNew is like New but panics on error.
func MustNew(coords ...float64) Vector {
	v, err := New(coords...)
	if err != nil {
		panic(err)
	}

	return v
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coords)
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []float64 {
	return slices.Clone(v.coords)
}

// At returns the coordinate at index i, or 0 when i is outside the vector.
//
// With WithPrecision, a non-zero coordinate is rounded to that many
// fractional digits.
func (v Vector) At(i int, opts ...Option) float64 {
	if i < 0 || i >= len(v.coords) {
		return 0
	}

	c := v.coords[i]
	if c == 0 || len(opts) == 0 {
		return c
	}

	o := newOptions(opts)
	if !o.hasPrecision {
		return c
	}

	return round.Fixed(c, o.precision)
}

// Rounded returns a copy with every coordinate rounded to DefaultPrecision
// fractional digits, or to the digits given by WithPrecision.
func (v Vector) Rounded(opts ...Option) Vector {
	o := newOptions(opts)

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = round.Fixed(c, o.precision)
	}

	return Vector{coords: out}
}

// Equal reports whether every coordinate of v and o, over the longer of the
// two dimensions, differs by no more than the tolerance.
func (v Vector) Equal(o Vector, opts ...Option) bool {
	tol := newOptions(opts).tolerance

	n := max(v.Dimension(), o.Dimension())
	for i := 0; i < n; i++ {
		if !scalar.EqualWithinAbs(v.At(i), o.At(i), tol) {
			return false
		}
	}

	return true
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	a, b := padded(v, o)
	return Vector{coords: floats.AddTo(make([]float64, len(a)), a, b)}
}

// Subtract returns v - o.
func (v Vector) Subtract(o Vector) Vector {
	a, b := padded(v, o)
	return Vector{coords: floats.SubTo(make([]float64, len(a)), a, b)}
}

// Scale returns v * factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{coords: floats.ScaleTo(make([]float64, len(v.coords)), factor, v.coords)}
}

// Magnitude returns the Euclidean norm ||v||.
func (v Vector) Magnitude() float64 {
	return floats.Norm(v.coords, 2)
}

// Normalize returns the unit vector v / ||v||.
// It returns ErrZeroVectorNormalize if v has zero magnitude.
func (v Vector) Normalize() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, ErrZeroVectorNormalize
	}

	return v.Scale(1.0 / m), nil
}

// Dot returns the dot product v · o.
func (v Vector) Dot(o Vector) float64 {
	a, b := padded(v, o)
	return floats.Dot(a, b)
}

// Angle returns the angle between v and o in radians, or in degrees with
// InDegrees. It returns ErrZeroVectorAngle if either operand is the zero
// vector.
//
// The cosine is rounded to FloatPrecision digits and clamped to [-1, 1]
// before arccos so that floating error cannot leave its domain.
func (v Vector) Angle(o Vector, opts ...Option) (float64, error) {
	u, err := v.Normalize()
	if err != nil {
		return 0, translateError(err, ErrZeroVectorNormalize, ErrZeroVectorAngle)
	}

	w, err := o.Normalize()
	if err != nil {
		return 0, translateError(err, ErrZeroVectorNormalize, ErrZeroVectorAngle)
	}

	cos := round.Clamp(round.Fixed(u.Dot(w), FloatPrecision), -1, 1)
	theta := math.Acos(cos)

	if newOptions(opts).degrees {
		return theta * 180 / math.Pi, nil
	}

	return theta, nil
}

// IsZero reports whether the magnitude of v is below the tolerance.
func (v Vector) IsZero(opts ...Option) bool {
	return v.Magnitude() < newOptions(opts).tolerance
}

// IsOrthogonal reports whether |v · o| is below the tolerance.
// The zero vector is orthogonal to every vector.
func (v Vector) IsOrthogonal(o Vector, opts ...Option) bool {
	return math.Abs(v.Dot(o)) < newOptions(opts).tolerance
}

// IsParallel reports whether v and o point in the same or opposite
// directions. The zero vector is parallel to every vector.
func (v Vector) IsParallel(o Vector) bool {
	if v.IsZero() || o.IsZero() {
		return true
	}

	theta, err := v.Angle(o)
	if err != nil {
		return false
	}

	return theta == 0 || theta == math.Pi
}

// ParallelComponentTo returns the orthogonal projection of v onto basis.
// It returns ErrNoUniqueParallelComponent if basis is the zero vector.
func (v Vector) ParallelComponentTo(basis Vector) (Vector, error) {
	u, err := basis.Normalize()
	if err != nil {
		return Vector{}, translateError(err, ErrZeroVectorNormalize, ErrNoUniqueParallelComponent)
	}

	return u.Scale(v.Dot(u)), nil
}

// PerpendicularComponentTo returns the component of v orthogonal to basis,
// so that the parallel and perpendicular components sum to v.
// It returns ErrNoUniqueOrthogonalComponent if basis is the zero vector.
func (v Vector) PerpendicularComponentTo(basis Vector) (Vector, error) {
	p, err := v.ParallelComponentTo(basis)
	if err != nil {
		return Vector{}, translateError(err, ErrNoUniqueParallelComponent, ErrNoUniqueOrthogonalComponent)
	}

	return v.Subtract(p), nil
}

// Cross returns the right-handed cross product v × o.
//
// Operands with fewer than three coordinates are embedded in three
// dimensions. A *DimensionError wrapping ErrCrossProductDimension is
// returned if either operand has more than three.
func (v Vector) Cross(o Vector) (Vector, error) {
	for _, d := range []int{v.Dimension(), o.Dimension()} {
		if d > crossDimension {
			return Vector{}, &DimensionError{
				Op:        "cross product",
				Dimension: d,
				Max:       crossDimension,
				kind:      ErrCrossProductDimension,
			}
		}
	}

	a0, a1, a2 := v.At(0), v.At(1), v.At(2)
	b0, b1, b2 := o.At(0), o.At(1), o.At(2)

	return Vector{coords: []float64{
		a1*b2 - b1*a2,
		-(a0*b2 - b0*a2),
		a0*b1 - b0*a1,
	}}, nil
}

// ParallelogramArea returns the area of the parallelogram spanned by v and o.
func (v Vector) ParallelogramArea(o Vector) (float64, error) {
	c, err := v.Cross(o)
	if err != nil {
		return 0, err
	}

	return c.Magnitude(), nil
}

// TriangleArea returns half the parallelogram area spanned by v and o.
func (v Vector) TriangleArea(o Vector) (float64, error) {
	area, err := v.ParallelogramArea(o)
	if err != nil {
		return 0, err
	}

	return area / 2.0, nil
}

// String formats v as "Vector(c0, c1, ..., cn)".
func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		if c == 0 {
			c = 0 // print negative zero as 0
		}
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}

	return "Vector(" + strings.Join(parts, ", ") + ")"
}

// padded returns the coordinates of a and b zero-extended to a common
// dimension. The returned slices must not be modified.
func padded(a, b Vector) ([]float64, []float64) {
	n := max(len(a.coords), len(b.coords))
	return extend(a.coords, n), extend(b.coords, n)
}

func extend(s []float64, n int) []float64 {
	if len(s) >= n {
		return s
	}

	out := make([]float64, n)
	copy(out, s)

	return out
}
