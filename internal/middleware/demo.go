package middleware

import "github.com/gin-gonic/gin"

// DemoHeaders marks the /demo response so the page can show that a
// route-scoped middleware ran before the handler.
func DemoHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Demo-Page", "true")
		c.Header("X-Middleware-Demo", "set by route middleware before the handler ran")
		c.Next()
	}
}
