package defaults

import "log/slog"

// Option configures a Registry during creation.
//
// Example:
//
//	reg := defaults.New(store, defaults.WithLogger(logger))
type Option func(*options)

// options holds optional configuration for Registry creation.
type options struct {
	logger *slog.Logger
}

// defaultOptions returns the default registry options.
func defaultOptions() options {
	return options{
		logger: nil, // Falls back to Logger() at log time
	}
}

// WithLogger sets a logger for the registry. Without it the registry logs
// through the package logger configured by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
