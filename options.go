package solvexplain

import (
	"log/slog"

	"github.com/albertocavalcante/go-solvexplain/internal/logging"
)

// Option configures explanation behavior.
type Option func(*config) error

type config struct {
	// logger receives warnings about unrecognized problem kinds and debug
	// output about the traversal. Nil means silent.
	logger *slog.Logger
}

// WithLogger sets a structured logger for explanation diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	text, err := solvexplain.Explain(g, conflicts, solvexplain.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *config) log() *slog.Logger {
	return logging.OrDiscard(c.logger)
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
