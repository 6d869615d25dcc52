package pages

import (
	"embed"
	"html/template"
	"strings"

	"vyronex/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	toastSuccess = "success"
	toastError   = "error"
)

// Toast is the banner shown at the top of a page after a submission.
type Toast struct {
	Kind        string
	Title       string
	Description string
}

var (
	bookingSubmitted = &Toast{Kind: toastSuccess, Title: "Booking Submitted!", Description: "We will contact you shortly to confirm your test drive."}
	bookingFailed    = &Toast{Kind: toastError, Title: "Error", Description: "Failed to submit booking. Please try again."}
	requestSubmitted = &Toast{Kind: toastSuccess, Title: "Request Submitted!", Description: "Our customization team will contact you shortly."}
	requestFailed    = &Toast{Kind: toastError, Title: "Error", Description: "Failed to submit request. Please try again."}
	loadFailed       = &Toast{Kind: toastError, Title: "Error", Description: "We could not load this page. Please try again."}
	tooManyRequests  = &Toast{Kind: toastError, Title: "Error", Description: "Too many submissions. Please try again later."}
)

// page is the data every template receives.
type page struct {
	Title   string
	Nav     string
	AppName string
	Toast   *Toast
	Content interface{}
}

type navLink struct {
	Name string
	Path string
	Key  string
}

var navLinks = []navLink{
	{Name: "Home", Path: "/", Key: "home"},
	{Name: "Car Sales", Path: "/categories", Key: "categories"},
	{Name: "Customization Studio", Path: "/customization", Key: "customization"},
	{Name: "Contact", Path: "/contact", Key: "contact"},
}

// ParseTemplates parses the embedded page templates. Links rendered through
// the "path" function are prefixed with base.
func ParseTemplates(base string) (*template.Template, error) {
	prefix := strings.TrimSuffix(base, "/")

	funcs := template.FuncMap{
		"path": func(parts ...string) string {
			return prefix + strings.Join(parts, "")
		},
		"price": utils.FormatPrice,
		"telURL": func(s string) template.URL {
			if strings.HasPrefix(s, "tel:") {
				return template.URL(s)
			}
			return ""
		},
		"nav": func() []navLink {
			return navLinks
		},
	}

	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func (h *PageHandler) render(c *gin.Context, status int, name string, p page) {
	p.AppName = utils.AppName
	c.Render(status, render.HTML{Template: h.templates, Name: name, Data: p})
}
