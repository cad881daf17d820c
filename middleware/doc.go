// Package middleware provides HTTP middleware for request correlation,
// panic recovery, request logging, and tracing.
//
// Middleware compose with Chain; the first entry is the outermost:
//
//	handler := middleware.Chain(
//		middleware.RequestID(),
//		middleware.Recovery(log),
//		middleware.Trace(),
//		middleware.RequestLogger(log),
//	)(mux)
//
// Gin applications use the Gin-native variants instead:
//
//	router.Use(middleware.GinRequestID())
//	router.Use(middleware.GinRecovery())
//	router.Use(middleware.GinRequestLogger())
//
// All error responses produced here are RFC 7807 problem documents rendered
// through the problem package.
package middleware
