// Package logger provides structured logging for errkit applications
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, component-scoped loggers, and context-aware loggers
// that carry the request correlation id and active trace/span ids.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("store")
//	log.Info("record created", logger.Fields("id", id))
//
//	// Enriched with request_id / trace_id from the context:
//	logger.WithContext(ctx).Warn("lookup miss")
package logger
