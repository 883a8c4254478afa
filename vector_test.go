package vectors

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := New()
		require.ErrorIs(t, err, ErrEmptyVector)
	})

	t.Run("Dimension", func(t *testing.T) {
		assert.Equal(t, 1, MustNew(10).Dimension())
		assert.Equal(t, 2, MustNew(10, 20).Dimension())
		assert.Equal(t, 3, MustNew(10, 20, 30).Dimension())
	})

	t.Run("CopiesInput", func(t *testing.T) {
		coords := []float64{1, 2, 3}
		v := MustNew(coords...)
		coords[0] = 99

		assert.Equal(t, 1.0, v.At(0))
	})

	t.Run("MustNewPanics", func(t *testing.T) {
		assert.Panics(t, func() { MustNew() })
	})
}

func TestCoordinates(t *testing.T) {
	v := MustNew(1, 2, 3)

	c := v.Coordinates()
	assert.Equal(t, []float64{1, 2, 3}, c)

	c[0] = 42
	assert.Equal(t, 1.0, v.At(0), "Coordinates must return a copy")
}

func TestAt(t *testing.T) {
	v := MustNew(10, 20, 30)

	assert.Equal(t, 10.0, v.At(0))
	assert.Equal(t, 20.0, v.At(1))
	assert.Equal(t, 30.0, v.At(2))

	t.Run("OutOfBounds", func(t *testing.T) {
		assert.Equal(t, 0.0, MustNew(10).At(1))
		assert.Equal(t, 0.0, v.At(100))
		assert.Equal(t, 0.0, v.At(-1))
	})

	t.Run("WithPrecision", func(t *testing.T) {
		f := MustNew(10.33333, 20.44444, 30.123456789)
		assert.Equal(t, 10.333, f.At(0, WithPrecision(3)))
		assert.Equal(t, 20.444, f.At(1, WithPrecision(3)))
		assert.Equal(t, 30.123, f.At(2, WithPrecision(3)))
	})

	t.Run("UnrelatedOptionDoesNotRound", func(t *testing.T) {
		f := MustNew(10.33333)
		assert.Equal(t, 10.33333, f.At(0, WithTolerance(1)))
	})
}

func TestRounded(t *testing.T) {
	v := MustNew(10.97111, 20.44444444, 30.123456789)

	t.Run("Precision", func(t *testing.T) {
		r := v.Rounded(WithPrecision(2))
		assert.Equal(t, []float64{10.97, 20.44, 30.12}, r.Coordinates())
	})

	t.Run("DefaultPrecision", func(t *testing.T) {
		r := v.Rounded()
		assert.Equal(t, []float64{10.971, 20.444, 30.123}, r.Coordinates())
	})

	t.Run("Immutable", func(t *testing.T) {
		_ = v.Rounded()
		assert.Equal(t, 10.97111, v.At(0))
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Vector(10, 20)", MustNew(10, 20).String())
	assert.Equal(t, "Vector(1.5, -2.25, 0)", MustNew(1.5, -2.25, 0).String())
	assert.Equal(t, "Vector(0, 1)", MustNew(math.Copysign(0, -1), 1).String())
}

func TestEqual(t *testing.T) {
	v1 := MustNew(10, 20, 30)
	v2 := MustNew(10, 20, 30)
	v3 := MustNew(30, 10)

	assert.True(t, v1.Equal(v2))
	assert.True(t, v2.Equal(v1))
	assert.False(t, v1.Equal(v3))
	assert.False(t, v3.Equal(v1))

	t.Run("Symmetric", func(t *testing.T) {
		a := MustNew(1, 2)
		b := MustNew(1, 2.5)
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	t.Run("Padded", func(t *testing.T) {
		assert.True(t, MustNew(1, 2).Equal(MustNew(1, 2, 0)))
		assert.True(t, MustNew(1, 2, 0).Equal(MustNew(1, 2)))
		assert.False(t, MustNew(1, 2).Equal(MustNew(1, 2, 1)))
		assert.False(t, MustNew(1, 2, 1).Equal(MustNew(1, 2)))
	})

	t.Run("Tolerance", func(t *testing.T) {
		a := MustNew(1.0)
		b := MustNew(1.0 + 1e-12)
		c := MustNew(1.001)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
		assert.True(t, a.Equal(c, WithTolerance(1e-2)))
		assert.False(t, a.Equal(b, WithTolerance(0)))
	})
}

func TestArithmetic(t *testing.T) {
	a := MustNew(1, 2, 3)
	b := MustNew(4, 5)

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, []float64{5, 7, 3}, a.Add(b).Coordinates())
		assert.Equal(t, []float64{5, 7, 3}, b.Add(a).Coordinates())
	})

	t.Run("Subtract", func(t *testing.T) {
		assert.Equal(t, []float64{-3, -3, 3}, a.Subtract(b).Coordinates())
		assert.Equal(t, []float64{3, 3, -3}, b.Subtract(a).Coordinates())
	})

	t.Run("Scale", func(t *testing.T) {
		assert.Equal(t, []float64{2, 4, 6}, a.Scale(2).Coordinates())
		assert.Equal(t, []float64{-1, -2, -3}, a.Scale(-1).Coordinates())
	})

	t.Run("OperandsUnchanged", func(t *testing.T) {
		_ = a.Add(b)
		_ = a.Subtract(b)
		_ = a.Scale(10)
		assert.Equal(t, []float64{1, 2, 3}, a.Coordinates())
		assert.Equal(t, []float64{4, 5}, b.Coordinates())
	})
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		expected float64
	}{
		{"Pythagorean", MustNew(3, 4), 5},
		{"Zero", MustNew(0, 0), 0},
		{"Negative", MustNew(-3, -4), 5},
		{"Single", MustNew(-7), 7},
		{"ThreeD", MustNew(1, 2, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.v.Magnitude(), 1e-12)
		})
	}
}

func TestNormalize(t *testing.T) {
	u, err := MustNew(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, u.At(0), 1e-12)
	assert.InDelta(t, 0.8, u.At(1), 1e-12)
	assert.InDelta(t, 1.0, u.Magnitude(), DefaultTolerance)

	_, err = MustNew(0, 0).Normalize()
	require.ErrorIs(t, err, ErrZeroVectorNormalize)
}

func TestDot(t *testing.T) {
	a := MustNew(7.887, 4.138)
	b := MustNew(-8.802, 6.776)

	d := a.Dot(b)
	assert.Equal(t, -41.382, MustNew(d).At(0, WithPrecision(3)))
	assert.Equal(t, d, b.Dot(a))

	t.Run("Padded", func(t *testing.T) {
		assert.Equal(t, 11.0, MustNew(1, 2, 3).Dot(MustNew(3, 4)))
		assert.Equal(t, 11.0, MustNew(3, 4).Dot(MustNew(1, 2, 3)))
	})
}

func TestAngle(t *testing.T) {
	a := MustNew(3.183, -7.627)
	b := MustNew(-2.668, 5.319)

	t.Run("Radians", func(t *testing.T) {
		theta, err := a.Angle(b)
		require.NoError(t, err)
		assert.Equal(t, 3.072, MustNew(theta).At(0, WithPrecision(3)))
	})

	t.Run("Degrees", func(t *testing.T) {
		theta, err := a.Angle(b, InDegrees())
		require.NoError(t, err)
		assert.InDelta(t, 176.014, theta, 1e-3)
	})

	t.Run("RightAngle", func(t *testing.T) {
		theta, err := MustNew(1, 0).Angle(MustNew(0, 1))
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, theta, 1e-12)
	})

	t.Run("SameDirection", func(t *testing.T) {
		theta, err := MustNew(1, 2).Angle(MustNew(2, 4))
		require.NoError(t, err)
		assert.Equal(t, 0.0, theta)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		_, err := MustNew(0, 0).Angle(MustNew(2, 3))
		require.ErrorIs(t, err, ErrZeroVectorAngle)
		assert.False(t, errors.Is(err, ErrZeroVectorNormalize))

		_, err = MustNew(2, 3).Angle(MustNew(0, 0))
		require.ErrorIs(t, err, ErrZeroVectorAngle)
	})
}

func TestIsZero(t *testing.T) {
	assert.True(t, MustNew(0, 0).IsZero())
	assert.True(t, MustNew(1e-12, 0).IsZero())
	assert.False(t, MustNew(1e-3).IsZero())
	assert.True(t, MustNew(1e-3).IsZero(WithTolerance(1e-2)))
}

func TestIsOrthogonal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected bool
	}{
		{"Axes", MustNew(1, 0), MustNew(0, 1), true},
		{"NearlyPerpendicular", MustNew(-7.579, -7.88), MustNew(22.737, -21.868), false},
		{"Perpendicular", MustNew(2, 3), MustNew(-3, 2), true},
		{"ZeroLeft", MustNew(0, 0), MustNew(2, 3), true},
		{"ZeroRight", MustNew(2, 3), MustNew(0, 0), true},
		{"Oblique", MustNew(1, 1), MustNew(1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.IsOrthogonal(tt.b))
		})
	}

	t.Run("Tolerance", func(t *testing.T) {
		assert.True(t, MustNew(1, 0).IsOrthogonal(MustNew(0.001, 1), WithTolerance(0.01)))
	})
}

func TestIsParallel(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected bool
	}{
		{"SameDirection", MustNew(1, 2), MustNew(2, 4), true},
		{"OppositeDirection", MustNew(1, 2), MustNew(-2, -4), true},
		{"Unrelated", MustNew(-2.029, 9.97, 4.172), MustNew(-9.231, -6.639, -7.245), false},
		{"Oblique", MustNew(1, 0), MustNew(1, 1), false},
		{"ZeroLeft", MustNew(0, 0), MustNew(2, 3), true},
		{"ZeroRight", MustNew(2, 3), MustNew(0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.IsParallel(tt.b))
		})
	}
}

func TestParallelComponentTo(t *testing.T) {
	v := MustNew(3.039, 1.879)
	basis := MustNew(0.825, 2.036)

	p, err := v.ParallelComponentTo(basis)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.083, 2.672}, p.Rounded().Coordinates())
	assert.True(t, p.IsParallel(basis))

	t.Run("ZeroBasis", func(t *testing.T) {
		_, err := v.ParallelComponentTo(MustNew(0, 0))
		require.ErrorIs(t, err, ErrNoUniqueParallelComponent)
		assert.False(t, errors.Is(err, ErrZeroVectorNormalize))
	})
}

func TestPerpendicularComponentTo(t *testing.T) {
	v := MustNew(3.039, 1.879)
	basis := MustNew(0.825, 2.036)

	q, err := v.PerpendicularComponentTo(basis)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.956, -0.793}, q.Rounded().Coordinates())
	assert.True(t, q.IsOrthogonal(basis, WithTolerance(1e-9)))

	t.Run("ZeroBasis", func(t *testing.T) {
		_, err := v.PerpendicularComponentTo(MustNew(0, 0))
		require.ErrorIs(t, err, ErrNoUniqueOrthogonalComponent)
		assert.False(t, errors.Is(err, ErrNoUniqueParallelComponent))
		assert.False(t, errors.Is(err, ErrZeroVectorNormalize))
	})
}

func TestCross(t *testing.T) {
	t.Run("Basis", func(t *testing.T) {
		c, err := MustNew(1, 0, 0).Cross(MustNew(0, 1, 0))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 1}, c.Coordinates())

		c, err = MustNew(0, 1, 0).Cross(MustNew(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0, 0}, c.Coordinates())

		c, err = MustNew(0, 0, 1).Cross(MustNew(1, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 0}, c.Coordinates())
	})

	t.Run("Values", func(t *testing.T) {
		c, err := MustNew(8.462, 7.893, -8.187).Cross(MustNew(6.984, -5.975, 4.778))
		require.NoError(t, err)
		assert.Equal(t, []float64{-11.205, -97.609, -105.685}, c.Rounded().Coordinates())
	})

	t.Run("Embedded", func(t *testing.T) {
		c, err := MustNew(2).Cross(MustNew(0, 3))
		require.NoError(t, err)
		assert.Equal(t, 3, c.Dimension())
		assert.True(t, c.Equal(MustNew(0, 0, 6)))
	})

	t.Run("TooManyDimensions", func(t *testing.T) {
		_, err := MustNew(1, 2, 3, 4).Cross(MustNew(1, 2, 3))
		require.ErrorIs(t, err, ErrCrossProductDimension)

		var de *DimensionError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 4, de.Dimension)
		assert.Equal(t, 3, de.Max)

		_, err = MustNew(1, 2).Cross(MustNew(1, 2, 3, 4, 5))
		require.ErrorIs(t, err, ErrCrossProductDimension)
	})

	t.Run("OrthogonalToOperands", func(t *testing.T) {
		a := MustNew(8.462, 7.893, -8.187)
		b := MustNew(6.984, -5.975, 4.778)
		c, err := a.Cross(b)
		require.NoError(t, err)
		assert.True(t, c.IsOrthogonal(a, WithTolerance(1e-9)))
		assert.True(t, c.IsOrthogonal(b, WithTolerance(1e-9)))
	})
}

func TestAreas(t *testing.T) {
	a := MustNew(8.462, 7.893, -8.187)
	b := MustNew(6.984, -5.975, 4.778)

	pa, err := a.ParallelogramArea(b)
	require.NoError(t, err)
	assert.Equal(t, 144.3, MustNew(pa).At(0, WithPrecision(3)))

	ta, err := a.TriangleArea(b)
	require.NoError(t, err)
	assert.Equal(t, pa/2, ta)

	t.Run("UnitSquare", func(t *testing.T) {
		area, err := MustNew(1, 0).ParallelogramArea(MustNew(0, 1))
		require.NoError(t, err)
		assert.Equal(t, 1.0, area)

		area, err = MustNew(1, 0).TriangleArea(MustNew(0, 1))
		require.NoError(t, err)
		assert.Equal(t, 0.5, area)
	})

	t.Run("TooManyDimensions", func(t *testing.T) {
		_, err := MustNew(1, 2, 3, 4).ParallelogramArea(b)
		require.ErrorIs(t, err, ErrCrossProductDimension)

		_, err = a.TriangleArea(MustNew(1, 2, 3, 4))
		require.ErrorIs(t, err, ErrCrossProductDimension)
	})
}

func TestTranslateError(t *testing.T) {
	other := errors.New("other")

	assert.NoError(t, translateError(nil, ErrZeroVectorNormalize, ErrZeroVectorAngle))
	assert.Equal(t, ErrZeroVectorAngle, translateError(ErrZeroVectorNormalize, ErrZeroVectorNormalize, ErrZeroVectorAngle))
	assert.Equal(t, other, translateError(other, ErrZeroVectorNormalize, ErrZeroVectorAngle))
}

func TestDimensionError(t *testing.T) {
	err := &DimensionError{Op: "cross product", Dimension: 4, Max: 3, kind: ErrCrossProductDimension}

	assert.Equal(t, "cross product: cross product valid only in three dimensions (got dimension 4, max 3)", err.Error())
	assert.Equal(t, ErrCrossProductDimension, errors.Unwrap(err))
}
