package explain

import (
	"log/slog"

	"github.com/albertocavalcante/go-solvexplain/internal/logging"
)

// Option configures a ProblemsExplainer.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for debug traces and for warnings about
// nodes without a recognized problem type. A nil logger keeps the explainer
// silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrDiscard(o.logger)
	return o
}
