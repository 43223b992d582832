package mesh

// Option configures mesh construction.
type Option func(*config)

type config struct {
	huller Huller
}

func newConfig(opts []Option) config {
	cfg := config{huller: Incremental{Tolerance: liftTolerance}}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithHuller computes convex hulls with h instead of the default
// [Incremental] hull.
func WithHuller(h Huller) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.huller = h
		}
	}
}
