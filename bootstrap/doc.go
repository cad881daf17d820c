// Package bootstrap wires the error-handling substrate for a service in one
// place: configuration loading, the global logger, problem type URIs, and
// OpenTelemetry providers.
//
// # Quick Start
//
// Services without their own config struct use Init:
//
//	rt, err := bootstrap.Init(ctx, "billing-api")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Shutdown(context.Background())
//
// Services with a typed config embed config.ServiceConfig and use the App
// lifecycle, which adds startup/shutdown hooks and signal handling:
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app.OnStop(func(ctx context.Context) error { return server.Close() })
//	app.Run(ctx)
package bootstrap
