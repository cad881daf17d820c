package problem

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError converts err and sends it on c as a problem response,
// filling Instance with the request path.
func RespondWithError(c *gin.Context, err error) {
	p := From(c.Request.Context(), err)
	p.Instance = c.Request.URL.Path
	c.Data(p.Status, ContentType, marshal(p))
}

// AbortWithError sends the problem response and aborts the handler chain.
// Use from middleware; plain handlers should prefer RespondWithError.
func AbortWithError(c *gin.Context, err error) {
	RespondWithError(c, err)
	c.Abort()
}
