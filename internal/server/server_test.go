package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"deptsite/internal/config"
	"deptsite/internal/database"
	"deptsite/internal/models"
)

const testDB = "test.db"

func setup() *gin.Engine {
	os.Remove(testDB)

	cfg := &config.Config{
		Port:          "3000",
		Env:           "production",
		DBDSN:         testDB,
		SessionSecret: "test-secret",
		TemplatesGlob: "../../web/templates/*.html",
		StaticDir:     "../../web/static",
	}

	database.Init(cfg)
	return NewRouter(cfg)
}

func teardown() {
	if sqlDB, err := database.DB.DB(); err == nil {
		sqlDB.Close()
	}
	os.Remove(testDB)
}

// browser drives the router like a cookie-keeping client so flows that
// span redirects (flash messages, sessions) can be followed end to end.
type browser struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, r *gin.Engine) *browser {
	return &browser{t: t, r: r, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, nil)
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, target, form)
}

func (b *browser) login(email, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

func (b *browser) register(name, email, password string) *httptest.ResponseRecorder {
	return b.post("/register", url.Values{
		"name":            {name},
		"email":           {email},
		"confirmEmail":    {email},
		"password":        {password},
		"confirmPassword": {password},
	})
}

func userCount() int64 {
	var n int64
	database.DB.Model(&models.User{}).Count(&n)
	return n
}
