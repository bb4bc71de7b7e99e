package handlers

import (
	"net/http"
	"strings"

	"deptsite/internal/database"
	"deptsite/internal/flash"
	"deptsite/internal/middleware"
	"deptsite/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", view{Title: "Sign In"})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user := database.FindUserByEmail(strings.TrimSpace(form.Email))
	if user == nil {
		flash.Error(c, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		flash.Error(c, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	middleware.SetSessionUser(c, models.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})

	c.Redirect(http.StatusFound, "/dashboard")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
