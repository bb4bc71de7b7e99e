package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewLiveReload builds the secondary dev-only engine that listens one port
// above the site. The dev script in the page footer holds /livereload open
// and reloads the browser when the stream drops, i.e. when the server
// restarts.
func NewLiveReload() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/livereload", func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")

		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		c.SSEvent("reload", "ready")
		c.Writer.Flush()

		c.Stream(func(w io.Writer) bool {
			select {
			case <-ticker.C:
				c.SSEvent("ping", time.Now().Unix())
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
