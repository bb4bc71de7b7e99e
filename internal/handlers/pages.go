package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func HomePage(c *gin.Context) {
	render(c, http.StatusOK, "home.html", view{Title: "Welcome Home"})
}

func AboutPage(c *gin.Context) {
	render(c, http.StatusOK, "about.html", view{Title: "About the Department"})
}

func ProductsPage(c *gin.Context) {
	render(c, http.StatusOK, "products.html", view{Title: "Our Products"})
}

// DemoPage renders under the route-scoped DemoHeaders middleware.
func DemoPage(c *gin.Context) {
	render(c, http.StatusOK, "demo.html", view{Title: "Middleware Demo"})
}

func Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", view{Title: "Dashboard"})
}

// TestError always raises a 500 condition for the shared error responder.
func TestError(c *gin.Context) {
	_ = c.AbortWithError(http.StatusInternalServerError,
		errors.New("this is a deliberately raised test error"))
}

// NotFound is the router's catch-all.
func NotFound(c *gin.Context) {
	_ = c.AbortWithError(http.StatusNotFound,
		errors.New("the page "+c.Request.URL.Path+" does not exist"))
}
