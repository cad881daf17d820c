package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/errkit/requestid"
)

// HeaderRequestID is the header carrying the request correlation id.
const HeaderRequestID = "X-Request-Id"

// RequestID establishes the correlation scope for each request: it takes the
// inbound X-Request-Id header or generates a new id, binds it to the request
// context for the rest of the chain, and echoes it on both request and
// response headers.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = requestid.New()
				r.Header.Set(HeaderRequestID, id)
			}
			w.Header().Set(HeaderRequestID, id)

			ctx := requestid.NewContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GinRequestID is the Gin form of RequestID. Prefer RequestID at the server
// handler level; use this when the Gin engine is the outermost handler.
func GinRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = requestid.New()
		}

		ctx := requestid.NewContext(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
