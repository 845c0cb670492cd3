package puzzle

// Option configures a Test or SolveAndReport call.
type Option func(*runConfig)

type runConfig struct {
	debug       bool
	expected    any
	hasExpected bool
}

func newRunConfig(opts []Option) runConfig {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDebug disables output capture so every diagnostic line is live.
func WithDebug(debug bool) Option {
	return func(c *runConfig) {
		c.debug = debug
	}
}

// WithExpected sets the known answer for the real input.
// A mismatch ends the run in FAILED without printing the answer.
func WithExpected(expected any) Option {
	return func(c *runConfig) {
		c.expected = expected
		c.hasExpected = true
	}
}
