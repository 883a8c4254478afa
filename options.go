package vectors

const (
	// DefaultTolerance is the absolute slack allowed by approximate comparisons.
	DefaultTolerance = 1e-10

	// DefaultPrecision is the number of fractional digits kept by Rounded.
	DefaultPrecision = 3

	// FloatPrecision is the number of fractional digits the cosine is rounded
	// to before it is passed to arccos.
	FloatPrecision = 10
)

type options struct {
	tolerance    float64
	precision    int
	hasPrecision bool
	degrees      bool
}

func newOptions(opts []Option) options {
	o := options{
		tolerance: DefaultTolerance,
		precision: DefaultPrecision,
	}

	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Option configures the comparison and rounding behavior of a single call.
//
// Options that do not apply to an operation are ignored by it.
type Option func(*options)

// WithTolerance sets the absolute tolerance used by Equal, IsZero and
// IsOrthogonal. Negative values are treated as zero.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance < 0 {
			tolerance = 0
		}
		o.tolerance = tolerance
	}
}

// WithPrecision sets the number of fractional digits used for rounding.
//
// At only rounds when this option is given; Rounded falls back to
// DefaultPrecision.
func WithPrecision(precision int) Option {
	return func(o *options) {
		o.precision = precision
		o.hasPrecision = true
	}
}

// InDegrees makes Angle report degrees instead of radians.
func InDegrees() Option {
	return func(o *options) {
		o.degrees = true
	}
}
