package memdb

const (
	// DefaultMemSize the default map size used for storing data.
	DefaultMemSize = 100
	// DefaultMaxTransactions caps how many distinct tx hashes are retained across all clients.
	DefaultMaxTransactions = 10_000
)

type config struct {
	memSize int
	maxTxs  uint
}

type Option func(*config)

// WithMemSize allows us to specify a custom mem size for store maps
func WithMemSize(memSize int) Option {
	return func(c *config) {
		if memSize >= 0 {
			c.memSize = memSize
		}
	}
}

// WithMaxTransactions sets how many distinct tx hashes are kept before the
// oldest ones are evicted. Zero keeps the default.
func WithMaxTransactions(n uint) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTxs = n
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{memSize: DefaultMemSize, maxTxs: DefaultMaxTransactions}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
