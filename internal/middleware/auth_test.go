package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"deptsite/internal/models"
)

func newTestEngine(seed func(c *gin.Context), guarded ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("dept_session", cookie.NewStore([]byte("test-secret"))))

	// writes a session and returns its cookie
	r.GET("/seed", func(c *gin.Context) {
		seed(c)
		c.String(http.StatusOK, "ok")
	})

	chain := append(guarded, func(c *gin.Context) {
		c.String(http.StatusOK, "handler ran")
	})
	r.GET("/guarded", chain...)
	return r
}

func seedUser(role models.UserRole) func(c *gin.Context) {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("user_id", uint(5))
		sess.Set("name", "Jordan Example")
		sess.Set("email", "jordan@dept.edu")
		sess.Set("role", string(role))
		_ = sess.Save()
	}
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	r := newTestEngine(seedUser(models.RoleUser), RequireLogin())

	w := get(r, "/guarded", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	// the redirect must carry the flash in a fresh session cookie
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestRequireLoginPassesSession(t *testing.T) {
	r := newTestEngine(seedUser(models.RoleUser), RequireLogin())

	seeded := get(r, "/seed", nil)
	w := get(r, "/guarded", seeded.Result().Cookies())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "handler ran", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     models.UserRole
		want     int
		location string
	}{
		{"admin allowed", models.RoleAdmin, http.StatusOK, ""},
		{"plain user refused", models.RoleUser, http.StatusFound, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(seedUser(tt.role), RequireRole(models.RoleAdmin))

			seeded := get(r, "/seed", nil)
			w := get(r, "/guarded", seeded.Result().Cookies())
			assert.Equal(t, tt.want, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
		})
	}
}

func TestRequireRoleRedirectsAnonymousToLogin(t *testing.T) {
	r := newTestEngine(seedUser(models.RoleAdmin), RequireRole(models.RoleAdmin))

	w := get(r, "/guarded", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDemoHeaders(t *testing.T) {
	r := newTestEngine(func(c *gin.Context) {}, DemoHeaders())

	w := get(r, "/guarded", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Demo-Page"))
	assert.NotEmpty(t, w.Header().Get("X-Middleware-Demo"))
}

func TestInjectUserAndCurrentUser(t *testing.T) {
	r := newTestEngine(seedUser(models.RoleAdmin), InjectUser(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		assert.True(t, ok)
		assert.Equal(t, uint(5), user.ID)
		assert.Equal(t, "jordan@dept.edu", user.Email)
		assert.True(t, user.IsAdmin())
		c.Next()
	})

	seeded := get(r, "/seed", nil)
	w := get(r, "/guarded", seeded.Result().Cookies())
	assert.Equal(t, http.StatusOK, w.Code)
}
