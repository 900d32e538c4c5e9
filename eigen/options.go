package eigen

// Option configures the eigenvector stage.
type Option func(*options)

type options struct {
	scaler Scaler
}

const panicNilScaler = "eigen: WithScaler: scaler must not be nil"

// WithScaler sets the free-parameter strategy. Panics on nil.
func WithScaler(s Scaler) Option {
	if s == nil {
		panic(panicNilScaler)
	}

	return func(o *options) { o.scaler = s }
}

// WithSeed uses a RandomScaler over NewRand(seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.scaler = RandomScaler(NewRand(seed)) }
}

// gatherOptions applies opts over the defaults: a RandomScaler on the
// DefaultSeed stream, fresh for every call.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.scaler == nil {
		o.scaler = RandomScaler(nil)
	}

	return o
}
