package gridgo

type options struct {
	approximate bool
	logger      *Logger
	metrics     MetricsCollector
}

var defaultOptions = options{
	approximate: false,
	logger:      NoopLogger(),
	metrics:     nil,
}

// Option configures Grid construction behavior.
type Option func(*options)

// WithApproximate disables the exact segment/box filter on queries. The
// result is then the raw cell-overlap candidate set: a superset of the
// exact result that is cheaper to compute, since no per-candidate geometry
// test runs. Useful when the caller re-tests candidate geometry anyway.
func WithApproximate() Option {
	return func(o *options) {
		o.approximate = true
	}
}

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
