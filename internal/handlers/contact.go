package handlers

import (
	"net/http"
	"strings"

	"deptsite/internal/database"
	"deptsite/internal/flash"
	"deptsite/internal/models"
	"deptsite/internal/validate"

	"github.com/gin-gonic/gin"
)

func ShowContactForm(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", view{
		Title:  "Contact Us",
		Styles: []string{"/static/css/contact.css"},
	})
}

type contactForm struct {
	Subject string `form:"subject"`
	Message string `form:"message"`
}

func SubmitContactForm(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Invalid contact form data.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	subject := strings.TrimSpace(form.Subject)
	message := strings.TrimSpace(form.Message)

	if msg, ok := validate.ContactSubject(subject); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	if msg, ok := validate.ContactMessage(message); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	if database.SaveContactSubmission(subject, message) == nil {
		flash.Error(c, "Failed to save your message. Please try again.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	flash.Success(c, "Thanks, your message has been received.")
	c.Redirect(http.StatusFound, "/contact")
}

type contactResponsesPage struct {
	Submissions []models.ContactSubmission
}

// ShowContactResponses runs behind RequireRole(admin): submissions are
// private to the department.
func ShowContactResponses(c *gin.Context) {
	render(c, http.StatusOK, "contact_responses.html", view{
		Title: "Contact Form Submissions",
		Data:  contactResponsesPage{Submissions: database.ListContactSubmissions()},
	})
}
