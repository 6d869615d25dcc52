// Package pages serves the server-rendered showroom site.
package pages

import (
	"html/template"
	"net/http"
	"strings"

	"vyronex/internal/services"
	"vyronex/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	catalog       services.CatalogService
	bookings      services.TestDriveService
	customization services.CustomizationService
	showroom      services.ShowroomService
	templates     *template.Template
	base          string
	logger        *logger.Logger
}

func NewPageHandler(
	catalog services.CatalogService,
	bookings services.TestDriveService,
	customization services.CustomizationService,
	showroom services.ShowroomService,
	base string,
	log *logger.Logger,
) (*PageHandler, error) {
	templates, err := ParseTemplates(base)
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		catalog:       catalog,
		bookings:      bookings,
		customization: customization,
		showroom:      showroom,
		templates:     templates,
		base:          base,
		logger:        log,
	}, nil
}

// path prefixes a site path with the base path, like the "path" template function.
func (h *PageHandler) path(parts ...string) string {
	return strings.TrimSuffix(h.base, "/") + strings.Join(parts, "")
}

type homeView struct {
	Categories []services.FeaturedCategory
	Features   []services.Feature
}

func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home", page{
		Title: "Home",
		Nav:   "home",
		Content: homeView{
			Categories: h.showroom.FeaturedCategories(),
			Features:   h.showroom.Features(),
		},
	})
}

func (h *PageHandler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact", page{
		Title:   "Contact",
		Nav:     "contact",
		Content: h.showroom.Contact(),
	})
}

// NotFound sends unknown paths back to the home page.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.Redirect(http.StatusFound, h.path("/"))
}

// TooManySubmissions is rendered when a client exceeds the submission limit.
func (h *PageHandler) TooManySubmissions(c *gin.Context) {
	h.render(c, http.StatusTooManyRequests, "not_found", page{
		Title:   "Slow Down",
		Toast:   tooManyRequests,
		Content: notFoundView{Heading: "Too Many Submissions"},
	})
}

type notFoundView struct {
	Heading string
}

func (h *PageHandler) renderNotFound(c *gin.Context, status int, heading string, toast *Toast) {
	h.render(c, status, "not_found", page{
		Title:   heading,
		Nav:     "categories",
		Toast:   toast,
		Content: notFoundView{Heading: heading},
	})
}

// fetchFailed logs err and renders the matching not-found view with an error toast.
func (h *PageHandler) fetchFailed(c *gin.Context, err error, heading string) {
	h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load page data")
	h.renderNotFound(c, http.StatusInternalServerError, heading, loadFailed)
}
