// Package observability provides OpenTelemetry tracing and metrics integration
// for the error handling substrate.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	observability.RecordProblem(ctx, "NOT_FOUND", 404)
//	observability.RecordRequestEnd(ctx, "GET", "/users/42", 404, duration)
package observability
