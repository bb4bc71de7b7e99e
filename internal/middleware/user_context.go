package middleware

import (
	"deptsite/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser copies the session user into the request context. The session
// carries id/name/email/role precisely so downstream code never reloads the
// row per request.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get("user_id").(uint); ok && uid > 0 {
			name, _ := sess.Get("name").(string)
			email, _ := sess.Get("email").(string)
			role, _ := sess.Get("role").(string)
			c.Set(currentUserKey, models.SessionUser{
				ID:    uid,
				Name:  name,
				Email: email,
				Role:  models.UserRole(role),
			})
		}

		c.Next()
	}
}

// CurrentUser returns the session user attached by InjectUser, if any.
func CurrentUser(c *gin.Context) (models.SessionUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.SessionUser{}, false
	}
	user, ok := v.(models.SessionUser)
	return user, ok
}

// SetSessionUser writes the user into the session, both at login and when
// a self-edit has to refresh the live copy.
func SetSessionUser(c *gin.Context, user models.SessionUser) {
	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("name", user.Name)
	sess.Set("email", user.Email)
	sess.Set("role", string(user.Role))
	_ = sess.Save()
}
