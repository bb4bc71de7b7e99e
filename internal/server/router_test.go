package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicPages(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	for _, path := range []string{"/", "/about", "/products", "/catalog", "/faculty", "/contact", "/register", "/login"} {
		w := b.get(path)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestDemoPageHeaders(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/demo")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Demo-Page"))
	assert.NotEmpty(t, w.Header().Get("X-Middleware-Demo"))
}

func TestTestErrorAlwaysRendersA500(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/test-error")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "test error")
}

func TestUnknownCourseIs404Not500(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/catalog/unknown-slug")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestUnknownFacultyIs404(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/faculty/nobody-here")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoRouteCatchAll(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/no/such/page")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}

func TestFacultySortKeys(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/faculty?sort=department")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "current: department")

	// invalid key falls back to the default without an error
	w = b.get("/faculty?sort=xyz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "current: name")
}

func TestCourseSectionSortKeys(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/catalog/cs-101?sort=professor")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "current: professor")

	w = b.get("/catalog/cs-101?sort=bogus")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "current: time")
}

func TestHealthcheck(t *testing.T) {
	r := setup()
	defer teardown()
	b := newBrowser(t, r)

	w := b.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
