// Package problem converts application errors into RFC 7807 problem
// documents with a fixed status, title, and type per error code.
//
// Conversion happens once, at the HTTP boundary:
//
//	func handler(c *gin.Context) {
//		user, err := store.Find(c.Request.Context(), id)
//		if err != nil {
//			problem.RespondWithError(c, err)
//			return
//		}
//		c.JSON(http.StatusOK, user)
//	}
//
// Each conversion stamps the document with the request correlation id and a
// UTC timestamp, and emits one diagnostic log record and one metric sample.
package problem
