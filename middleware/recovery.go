package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/problem"
)

// Recovery returns middleware that recovers from panics, logs the stack, and
// answers with a 500 problem document. The panic value goes to the log only,
// never to the client.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logPanic(log, rec, r)
					problem.Write(w, r, apperrors.Internal("unhandled panic"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GinRecovery is the Gin form of Recovery.
func GinRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logPanic(nil, rec, c.Request)
				problem.AbortWithError(c, apperrors.Internal("unhandled panic"))
			}
		}()
		c.Next()
	}
}

// logPanic logs a recovered panic with its stack. If log is nil, the global
// logger is used.
func logPanic(log *logger.Logger, rec any, r *http.Request) {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log.Error("Panic recovered", map[string]interface{}{
		"error":  fmt.Sprintf("%v", rec),
		"stack":  string(debug.Stack()),
		"path":   r.URL.Path,
		"method": r.Method,
	})
}
