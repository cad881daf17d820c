package middleware

import (
	"net/http"
	"time"

	"github.com/kbukum/errkit/observability"
	"github.com/kbukum/errkit/requestid"
)

// Trace returns middleware that opens a span per request and records request
// metrics. Run it after RequestID so the span carries the correlation id.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := observability.StartSpan(r.Context(), observability.SpanHTTPRequest)
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, r.Method)
			observability.SetSpanAttribute(ctx, observability.AttrHTTPRoute, r.URL.Path)
			if id, ok := requestid.FromContext(ctx); ok {
				observability.SetSpanAttribute(ctx, observability.AttrRequestID, id)
			}

			observability.RecordRequestStart(ctx)
			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))
			duration := time.Since(start)

			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, sw.status)
			observability.SetSpanAttribute(ctx, observability.AttrDurationMs, duration.Milliseconds())
			observability.RecordRequestEnd(ctx, r.Method, r.URL.Path, sw.status, duration)
		})
	}
}
