package pages

import (
	"errors"
	"net/http"
	"net/url"

	"vyronex/internal/handlers/shared"
	"vyronex/internal/models"
	"vyronex/internal/services"
	"vyronex/internal/validators"

	"github.com/gin-gonic/gin"
)

type customizationView struct {
	Groups          []models.OptionGroup
	Selection       services.Selection
	FeaturedAlloys  []services.AlloyWheel
	AlloyCollection []services.AlloyWheel
	Form            models.CustomizationForm
	Errors          map[string]string
	Submitted       bool

	base func(parts ...string) string
}

// ToggleURL links to this page with id flipped in the current selection.
func (v *customizationView) ToggleURL(id string) string {
	q := url.Values{}
	if len(v.Selection) > 0 {
		q.Set("selected", v.Selection.String())
	}
	q.Set("toggle", id)
	return v.base("/customization?", q.Encode())
}

func (h *PageHandler) newCustomizationView(c *gin.Context, selection services.Selection) (*customizationView, *Toast) {
	featured, collection := h.showroom.AlloyShowcase()
	view := &customizationView{
		Selection:       selection,
		FeaturedAlloys:  featured,
		AlloyCollection: collection,
		base:            h.path,
	}

	groups, err := h.customization.GroupedOptions(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load customization options")
		return view, loadFailed
	}
	view.Groups = groups
	return view, nil
}

// Customization renders the studio. The selection travels in the query
// string: "selected" holds the current ids and "toggle" flips one of them.
func (h *PageHandler) Customization(c *gin.Context) {
	selection := services.ParseSelection(c.Query("selected"))
	if toggle := c.Query("toggle"); toggle != "" {
		selection = selection.Toggle(toggle)
	}

	view, toast := h.newCustomizationView(c, selection)
	h.render(c, http.StatusOK, "customization", page{
		Title:   "Customization Studio",
		Nav:     "customization",
		Toast:   toast,
		Content: view,
	})
}

// SubmitCustomization stores a request with its optional inspiration image.
// A successful submission clears the form and the selection.
func (h *PageHandler) SubmitCustomization(c *gin.Context) {
	var form models.CustomizationForm
	bindErr := c.ShouldBind(&form)
	selection := services.NewSelection(form.SelectedOptions)

	view, _ := h.newCustomizationView(c, selection)
	p := page{Title: "Customization Studio", Nav: "customization", Content: view}

	fail := func(status int, fields map[string]string) {
		view.Form = form
		view.Errors = fields
		p.Toast = requestFailed
		h.render(c, status, "customization", p)
	}

	if bindErr != nil {
		fail(http.StatusBadRequest, nil)
		return
	}

	upload, closer, err := shared.FormImage(c, shared.InspirationImageField)
	if err != nil {
		fail(http.StatusBadRequest, map[string]string{shared.InspirationImageField: err.Error()})
		return
	}
	defer closer.Close()

	_, err = h.customization.SubmitRequest(c.Request.Context(), &form, upload)
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			fail(http.StatusUnprocessableEntity, verrs.Fields())
			return
		}
		if message, ok := shared.ImageErrorMessage(err); ok {
			fail(http.StatusUnprocessableEntity, map[string]string{shared.InspirationImageField: message})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to submit customization request")
		fail(http.StatusInternalServerError, nil)
		return
	}

	view.Selection = services.Selection{}
	view.Submitted = true
	p.Toast = requestSubmitted
	h.render(c, http.StatusOK, "customization", p)
}
