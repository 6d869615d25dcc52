package pages

import (
	"errors"
	"net/http"
	"strconv"

	"vyronex/internal/models"
	"vyronex/internal/services"
	"vyronex/internal/validators"

	"github.com/gin-gonic/gin"
)

const (
	categoryNotFound = "Category Not Found"
	carNotFound      = "Car Not Found"
)

type categoriesView struct {
	Categories []models.CarCategory
}

// Categories lists the active categories. A failed fetch renders the empty state.
func (h *PageHandler) Categories(c *gin.Context) {
	p := page{Title: "Car Sales", Nav: "categories"}

	categories, err := h.catalog.ActiveCategories(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load categories")
		p.Toast = loadFailed
	}
	p.Content = categoriesView{Categories: categories}

	h.render(c, http.StatusOK, "categories", p)
}

type filterLink struct {
	Label  string
	URL    string
	Active bool
}

type categoryView struct {
	Listing *services.CategoryListing
	Filters []filterLink
}

func (h *PageHandler) Category(c *gin.Context) {
	slug := c.Param("slug")
	filter := services.ParsePriceFilter(c.Query("price"))

	listing, err := h.catalog.CategoryListing(c.Request.Context(), slug, filter)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			h.renderNotFound(c, http.StatusNotFound, categoryNotFound, nil)
			return
		}
		h.fetchFailed(c, err, categoryNotFound)
		return
	}

	filters := make([]filterLink, 0, 3)
	for _, f := range []struct {
		label  string
		filter services.PriceFilter
	}{
		{"All Prices", services.PriceAll},
		{"Under $200K", services.PriceLow},
		{"$200K+", services.PriceHigh},
	} {
		filters = append(filters, filterLink{
			Label:  f.label,
			URL:    h.path("/category/", slug, "?price=", string(f.filter)),
			Active: f.filter == filter,
		})
	}

	h.render(c, http.StatusOK, "category", page{
		Title:   listing.Category.CategoryName,
		Nav:     "categories",
		Content: categoryView{Listing: listing, Filters: filters},
	})
}

type carView struct {
	Car       *models.PremiumCar
	Carousel  services.Carousel
	PrevURL   string
	NextURL   string
	Form      models.TestDriveForm
	Errors    map[string]string
	Submitted bool
}

func (h *PageHandler) newCarView(car *models.PremiumCar, image int) *carView {
	carousel := services.NewCarousel(car.Gallery(), image)
	imageURL := func(i int) string {
		return h.path("/car/", car.ID, "?image=", strconv.Itoa(i))
	}
	return &carView{
		Car:      car,
		Carousel: carousel,
		PrevURL:  imageURL(carousel.Prev()),
		NextURL:  imageURL(carousel.Next()),
	}
}

// loadCar fetches the car named in the path, rendering the not-found view when it cannot.
func (h *PageHandler) loadCar(c *gin.Context) (*models.PremiumCar, bool) {
	car, err := h.catalog.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			h.renderNotFound(c, http.StatusNotFound, carNotFound, nil)
			return nil, false
		}
		h.fetchFailed(c, err, carNotFound)
		return nil, false
	}
	return car, true
}

func (h *PageHandler) Car(c *gin.Context) {
	car, ok := h.loadCar(c)
	if !ok {
		return
	}

	image, _ := strconv.Atoi(c.Query("image"))
	h.render(c, http.StatusOK, "car", page{
		Title:   car.DisplayName(),
		Nav:     "categories",
		Content: h.newCarView(car, image),
	})
}

// BookTestDrive stores the booking form. On success the form is cleared; on
// failure the submitted values are rendered back with an error toast.
func (h *PageHandler) BookTestDrive(c *gin.Context) {
	car, ok := h.loadCar(c)
	if !ok {
		return
	}

	view := h.newCarView(car, 0)
	p := page{Title: car.DisplayName(), Nav: "categories", Content: view}

	var form models.TestDriveForm
	if err := c.ShouldBind(&form); err != nil {
		view.Form = form
		p.Toast = bookingFailed
		h.render(c, http.StatusBadRequest, "car", p)
		return
	}

	_, err := h.bookings.BookTestDrive(c.Request.Context(), car.ID, &form)
	if err != nil {
		view.Form = form
		p.Toast = bookingFailed

		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			view.Errors = verrs.Fields()
			h.render(c, http.StatusUnprocessableEntity, "car", p)
			return
		}

		h.logger.WithContext(c.Request.Context()).WithError(err).WithField("car_id", car.ID).Error("Failed to book test drive")
		h.render(c, http.StatusInternalServerError, "car", p)
		return
	}

	view.Submitted = true
	p.Toast = bookingSubmitted
	h.render(c, http.StatusOK, "car", p)
}
