package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorPages is the terminal responder for error conditions. Handlers
// signal one with c.AbortWithError(status, err); this middleware logs it
// and renders the matching page. Anything that is not explicitly a 404
// renders as a 500.
func ErrorPages() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		log.Printf("%d %s %s: %v", status, c.Request.Method, c.Request.URL.Path, err.Err)

		// AbortWithError writes the header right away, so only a body
		// already on the wire stops the page render.
		if c.Writer.Size() > 0 {
			return
		}

		if status == http.StatusNotFound {
			c.HTML(status, "404.html", gin.H{"message": err.Error()})
			return
		}
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"message": err.Error()})
	}
}

// Recovery turns panics into a generic 500 page. The panic value is logged
// server-side only and never reaches the response body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{
			"message": "Something went wrong on our end.",
		})
		c.Abort()
	})
}
