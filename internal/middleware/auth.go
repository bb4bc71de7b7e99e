package middleware

import (
	"net/http"

	"deptsite/internal/flash"
	"deptsite/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireLogin short-circuits to the login page when no session user is
// attached to the request.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			flash.Warning(c, "Please log in to continue.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole additionally requires the session role to match.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			flash.Warning(c, "Please log in to continue.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		roleStr, _ := sess.Get("role").(string)
		if models.UserRole(roleStr) != role {
			flash.Error(c, "You do not have permission to view that page.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
