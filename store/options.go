package store

import "log/slog"

// Option configures a Store during creation.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// WithLogger sets the store logger. Without it the store logs through
// defaults.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
