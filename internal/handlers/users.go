package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"deptsite/internal/database"
	"deptsite/internal/flash"
	"deptsite/internal/middleware"
	"deptsite/internal/models"
	"deptsite/internal/validate"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", view{
		Title:  "Create Account",
		Styles: []string{"/static/css/registration.css"},
	})
}

type registerForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	ConfirmEmail    string `form:"confirmEmail"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

// Register is an all-or-nothing gate: each check must pass before the next
// runs, and the first failure redirects back with its own flash. Nothing is
// written until every check has passed.
func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Invalid registration data.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	confirmEmail := strings.TrimSpace(form.ConfirmEmail)

	if msg, ok := validate.Name(name); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if msg, ok := validate.Email(email); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if !strings.EqualFold(confirmEmail, email) {
		flash.Error(c, "Email addresses do not match.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if msg, ok := validate.Password(form.Password); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if form.ConfirmPassword != form.Password {
		flash.Error(c, "Passwords do not match.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if database.EmailTaken(email, 0) {
		flash.Warning(c, "An account with this email already exists.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		flash.Error(c, "Failed to create your account.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := database.CreateUser(name, email, string(hash))
	if user == nil {
		flash.Error(c, "Failed to create your account.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Success(c, "Account created for "+name+". You can now log in.")
	c.Redirect(http.StatusFound, "/register")
}

type usersListPage struct {
	Users []models.User
}

// ShowAllUsers lists id, name and email. Password hashes never reach the
// view.
func ShowAllUsers(c *gin.Context) {
	render(c, http.StatusOK, "users_list.html", view{
		Title:  "Registered Users",
		Styles: []string{"/static/css/registration.css"},
		Data:   usersListPage{Users: database.ListUsers()},
	})
}

// loadEditTarget runs the shared load + permission gate for the edit form
// and the update action: the target must exist and the session user must be
// the target or an admin.
func loadEditTarget(c *gin.Context) (*models.User, models.SessionUser, bool) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return nil, models.SessionUser{}, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		flash.Error(c, "User not found.")
		c.Redirect(http.StatusFound, "/users")
		return nil, current, false
	}

	target := database.UserByID(uint(id))
	if target == nil {
		flash.Error(c, "User not found.")
		c.Redirect(http.StatusFound, "/users")
		return nil, current, false
	}

	if !current.CanEdit(target.ID) {
		flash.Error(c, "You do not have permission to edit this account.")
		c.Redirect(http.StatusFound, "/users")
		return nil, current, false
	}

	return target, current, true
}

type editAccountPage struct {
	User models.User
}

func ShowEditAccount(c *gin.Context) {
	target, _, ok := loadEditTarget(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "users_edit.html", view{
		Title:  "Edit Account",
		Styles: []string{"/static/css/registration.css"},
		Data:   editAccountPage{User: *target},
	})
}

type updateAccountForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

func UpdateAccount(c *gin.Context) {
	target, current, ok := loadEditTarget(c)
	if !ok {
		return
	}
	editURL := "/users/" + strconv.FormatUint(uint64(target.ID), 10) + "/edit"

	var form updateAccountForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Please correct the errors in the form.")
		c.Redirect(http.StatusFound, editURL)
		return
	}

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)

	if msg, ok := validate.Name(name); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, editURL)
		return
	}
	if msg, ok := validate.Email(email); !ok {
		flash.Error(c, msg)
		c.Redirect(http.StatusFound, editURL)
		return
	}

	// The target's own unchanged email is not a conflict, only another
	// user already holding the new one.
	if !strings.EqualFold(email, target.Email) && database.EmailTaken(email, target.ID) {
		flash.Warning(c, "An account with this email already exists.")
		c.Redirect(http.StatusFound, editURL)
		return
	}

	if !database.UpdateUser(target.ID, name, email) {
		flash.Error(c, "Failed to update the account.")
		c.Redirect(http.StatusFound, editURL)
		return
	}

	// keep the live session in step when a user edits themself
	if current.ID == target.ID {
		current.Name = name
		current.Email = email
		middleware.SetSessionUser(c, current)
	}

	flash.Success(c, "Account updated successfully.")
	c.Redirect(http.StatusFound, "/users")
}

// DeleteAccount runs behind RequireRole(admin); the handler still forbids
// an admin removing their own account.
func DeleteAccount(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		flash.Error(c, "User not found.")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if !current.CanDelete(uint(id)) {
		flash.Error(c, "You cannot delete your own account.")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if !database.DeleteUser(uint(id)) {
		flash.Error(c, "Failed to delete the account.")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	flash.Success(c, "Account deleted successfully.")
	c.Redirect(http.StatusFound, "/users")
}
