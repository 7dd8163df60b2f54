package chainhash

import "go.uber.org/zap"

// DefaultBuckets is the bucket count of a table built without WithInitialBuckets.
const DefaultBuckets = 10

type config struct {
	initialBuckets int
	logger         *zap.Logger
}

func defaultConfig() config {
	return config{
		initialBuckets: DefaultBuckets,
		logger:         zap.NewNop(),
	}
}

// Option configures a Table.
type Option func(*config)

// WithInitialBuckets sets the starting bucket count. It must be at least 1.
func WithInitialBuckets(n int) Option {
	return func(c *config) {
		c.initialBuckets = n
	}
}

// WithLogger routes rebuild tracing to logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
