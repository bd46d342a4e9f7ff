package projection

// DefaultFOV is the vertical field of view, in degrees, applied by
// Perspective when no WithFOV option is supplied.
const DefaultFOV = 60.0

// Option mutates factory options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options carries the resolved configuration of a factory call.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	fov float64 // vertical field of view in degrees (Perspective only)
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{fov: DefaultFOV}
}

// WithFOV sets the vertical field of view, in degrees, used by
// Perspective. The value is forwarded as-is: like every other frustum
// parameter it is the caller's responsibility to keep it sane (a
// non-finite or zero fov produces a degenerate matrix, not an error).
func WithFOV(degrees float64) Option {
	return func(o *options) {
		o.fov = degrees
	}
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
