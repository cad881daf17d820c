package bootstrap

import (
	"context"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/errkit/config"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/observability"
)

// Runtime is the wired substrate for a service: the resolved configuration,
// the global logger, and the telemetry providers started from it.
type Runtime struct {
	Config *config.ServiceConfig
	Logger *logger.Logger

	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// Init wires the substrate in one call: load configuration for the named
// service, initialize the global logger, set the problem type base, and start
// the OpenTelemetry providers when observability is enabled.
//
// Shut the runtime down on exit to flush telemetry:
//
//	rt, err := bootstrap.Init(ctx, "billing-api")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Shutdown(context.Background())
//
// Use NewApp instead when the service has its own typed config struct or
// needs lifecycle hooks.
func Init(ctx context.Context, service string, opts ...Option) (*Runtime, error) {
	o := resolveOptions(opts)

	base := o.config
	if base == nil {
		base = &config.ServiceConfig{}
		if err := config.LoadConfig(service, base, o.loaderOpts...); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if base.Name == "" {
		base.Name = service
	}

	app, err := NewApp(base, opts...)
	if err != nil {
		return nil, err
	}
	if err := app.Runtime.startObservability(ctx); err != nil {
		return nil, err
	}
	return app.Runtime, nil
}

// startObservability starts the tracer and meter providers when enabled.
func (rt *Runtime) startObservability(ctx context.Context) error {
	obs := &rt.Config.Observability
	if !obs.Enabled {
		return nil
	}

	tp, err := observability.InitTracer(ctx, obs.TracerConfigFor(rt.Config.Name, rt.Config.Version, rt.Config.Environment))
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	rt.tracerProvider = tp

	mp, err := observability.InitMeter(ctx, obs.MeterConfigFor(rt.Config.Name, rt.Config.Version, rt.Config.Environment))
	if err != nil {
		return fmt.Errorf("init meter: %w", err)
	}
	rt.meterProvider = mp
	return nil
}

// Shutdown flushes and stops the telemetry providers. It is safe to call
// when observability is disabled.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if rt.meterProvider != nil {
		if err := rt.meterProvider.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("meter shutdown: %w", err)
		}
	}
	if rt.tracerProvider != nil {
		if err := rt.tracerProvider.Shutdown(ctx); err != nil && shutdownErr == nil {
			shutdownErr = fmt.Errorf("tracer shutdown: %w", err)
		}
	}
	return shutdownErr
}
