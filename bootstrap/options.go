package bootstrap

import (
	"time"

	"github.com/kbukum/errkit/config"
	"github.com/kbukum/errkit/logger"
)

// Option configures the App or Runtime during creation.
// Options are non-generic so they can be used with any config type.
type Option func(*appOptions)

// appOptions collects all option values before applying.
type appOptions struct {
	logger          *logger.Logger
	gracefulTimeout *time.Duration
	config          *config.ServiceConfig
	loaderOpts      []config.LoaderOption
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is auto-initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}

// WithConfig supplies a pre-loaded service config to Init, skipping the
// file and environment lookup.
func WithConfig(cfg *config.ServiceConfig) Option {
	return func(o *appOptions) {
		o.config = cfg
	}
}

// WithConfigOptions forwards loader options to the config lookup performed
// by Init. Ignored when WithConfig is set.
func WithConfigOptions(opts ...config.LoaderOption) Option {
	return func(o *appOptions) {
		o.loaderOpts = append(o.loaderOpts, opts...)
	}
}
