package twisty

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxOrder bounds the number of repetitions tried when deriving a
// move's order. No built-in puzzle has a move of higher order.
const DefaultMaxOrder = 6

// Option configures Puzzle construction.
type Option func(*config)

type config struct {
	maxOrder         int
	logger           logrus.FieldLogger
	strict           bool
	extraDefinitions []string
}

func defaultConfig() *config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &config{
		maxOrder: DefaultMaxOrder,
		logger:   logger,
	}
}

// WithMaxOrder sets the largest move order the construction check accepts.
// Values below 1 are ignored.
func WithMaxOrder(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxOrder = n
		}
	}
}

// WithLogger routes construction diagnostics and skipped notation tokens to
// the given logger. By default the puzzle logs nothing.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrict makes New fail when the construction report is not clean,
// instead of returning a puzzle with unreliable moves.
func WithStrict(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithExtraDefinitions appends move definition lines after the descriptor's
// own definitions. A line naming an existing move replaces it.
func WithExtraDefinitions(lines ...string) Option {
	return func(c *config) {
		c.extraDefinitions = append(c.extraDefinitions, lines...)
	}
}
