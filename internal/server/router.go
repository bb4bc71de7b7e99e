package server

import (
	"net/http"

	"deptsite/internal/config"
	"deptsite/internal/handlers"
	"deptsite/internal/middleware"
	"deptsite/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	r.Static("/static", cfg.StaticDir)
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("dept_session", store))

	r.Use(middleware.ErrorPages())
	r.Use(middleware.InjectUser())

	// PUBLIC PAGES
	r.GET("/", handlers.HomePage)
	r.GET("/about", handlers.AboutPage)
	r.GET("/products", handlers.ProductsPage)
	r.GET("/demo", middleware.DemoHeaders(), handlers.DemoPage)
	r.GET("/test-error", handlers.TestError)

	// CATALOG
	r.GET("/catalog", handlers.CatalogList)
	r.GET("/catalog/:courseSlug", handlers.CourseDetail)

	// FACULTY
	r.GET("/faculty", handlers.FacultyList)
	r.GET("/faculty/:facultySlug", handlers.FacultyDetail)

	// CONTACT
	r.GET("/contact", handlers.ShowContactForm)
	r.POST("/contact", handlers.SubmitContactForm)
	r.GET("/contact/responses",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowContactResponses,
	)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireLogin())

	auth.GET("/dashboard", handlers.Dashboard)

	// ACCOUNTS
	auth.GET("/users", handlers.ShowAllUsers)
	auth.GET("/users/:id/edit", handlers.ShowEditAccount)
	auth.POST("/users/:id/update", handlers.UpdateAccount)
	auth.POST("/users/:id/delete",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteAccount,
	)

	// catch-all goes through the shared error responder
	r.NoRoute(handlers.NotFound)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
