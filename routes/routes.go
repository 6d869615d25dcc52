package routes

import (
	"net/http"
	"strings"

	"vyronex/internal/handlers/api"
	"vyronex/internal/handlers/pages"
	"vyronex/internal/middleware"
	"vyronex/internal/utils"
	"vyronex/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Pages      *pages.PageHandler
	Catalog    *api.CatalogHandler
	Submission *api.SubmissionHandler
	Staff      *api.StaffHandler
	Health     *api.HealthHandler
}

type Options struct {
	BasePath           string
	JWTSecret          string
	CORSAllowedOrigins []string
	TrustedProxies     []string
	MaxUploadSize      int64
	SubmissionsPerHour int
	RateLimiter        middleware.WindowCounter
	Logger             *logger.Logger
}

// NewRouter mounts the site, the JSON API and the health check under the base path.
func NewRouter(h Handlers, opts Options) (*gin.Engine, error) {
	router := gin.New()

	var proxies []string
	if len(opts.TrustedProxies) > 0 {
		proxies = opts.TrustedProxies
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		return nil, err
	}
	if opts.MaxUploadSize > 0 {
		router.MaxMultipartMemory = opts.MaxUploadSize
	}

	router.Use(middleware.RecoveryMiddleware(opts.Logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(opts.Logger))

	apiPrefix := strings.TrimSuffix(opts.BasePath, "/") + "/api/"
	router.Use(apiOnly(apiPrefix, middleware.CORSMiddleware(opts.CORSAllowedOrigins)))

	base := router.Group(opts.BasePath)

	pageLimit := middleware.SubmissionRateLimit(opts.RateLimiter, opts.SubmissionsPerHour, utils.SubmissionWindow, opts.Logger, h.Pages.TooManySubmissions)
	SetupPageRoutes(base, h.Pages, pageLimit)

	v1 := base.Group("/api/v1")
	apiLimit := middleware.SubmissionRateLimit(opts.RateLimiter, opts.SubmissionsPerHour, utils.SubmissionWindow, opts.Logger, utils.TooManyRequestsResponse)
	SetupAPIRoutes(v1, h, middleware.StaffRequired(opts.JWTSecret), apiLimit)

	base.GET("/health", h.Health.Health)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", "route not found")
			return
		}
		h.Pages.NotFound(c)
	})

	return router, nil
}

// apiOnly runs handler for paths under prefix. It is mounted on the engine so preflight
// requests, which match no route, still get CORS headers.
func apiOnly(prefix string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}
		handler(c)
	}
}

// SetupPageRoutes sets up the server-rendered site
func SetupPageRoutes(r *gin.RouterGroup, h *pages.PageHandler, limit gin.HandlerFunc) {
	r.GET("/", h.Home)
	r.GET("/categories", h.Categories)
	r.GET("/category/:slug", h.Category)
	r.GET("/car/:id", h.Car)
	r.POST("/car/:id/test-drive", limit, h.BookTestDrive)
	r.GET("/customization", h.Customization)
	r.POST("/customization", limit, h.SubmitCustomization)
	r.GET("/contact", h.Contact)
}

// SetupAPIRoutes sets up the JSON API
func SetupAPIRoutes(r *gin.RouterGroup, h Handlers, staffAuth, limit gin.HandlerFunc) {
	r.GET("/categories", h.Catalog.GetCategories)
	r.GET("/categories/:slug/cars", h.Catalog.GetCategoryCars)
	r.GET("/cars/:id", h.Catalog.GetCar)
	r.POST("/cars/:id/test-drives", limit, h.Submission.CreateTestDrive)

	customization := r.Group("/customization")
	{
		customization.GET("/options", h.Submission.GetCustomizationOptions)
		customization.POST("/requests", limit, h.Submission.CreateCustomizationRequest)
	}

	r.POST("/admin/login", limit, h.Staff.Login)

	admin := r.Group("/admin")
	admin.Use(staffAuth)
	{
		admin.GET("/test-drives", h.Staff.ListTestDrives)
		admin.GET("/customization-requests", h.Staff.ListCustomizationRequests)
		admin.GET("/feed", h.Staff.Feed)
	}
}
