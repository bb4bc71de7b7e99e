package handlers

import (
	"deptsite/internal/flash"
	"deptsite/internal/middleware"
	"deptsite/internal/models"

	"github.com/gin-gonic/gin"
)

// view enumerates exactly what templates may read. Pages put their own
// payload struct in Data; everything else is filled in by render.
type view struct {
	Title       string
	CurrentUser *models.SessionUser
	Flash       *flash.Message
	CurrentSort string
	Styles      []string
	Data        any
}

// render is a wrapper over c.HTML that attaches the session user and pops
// the pending flash message into the view.
func render(c *gin.Context, status int, tmpl string, v view) {
	if user, ok := middleware.CurrentUser(c); ok {
		v.CurrentUser = &user
	}
	if v.Flash == nil {
		v.Flash = flash.Pop(c)
	}
	c.HTML(status, tmpl, v)
}
