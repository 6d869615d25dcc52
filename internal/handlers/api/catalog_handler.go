package api

import (
	"errors"

	"vyronex/internal/services"
	"vyronex/internal/utils"
	"vyronex/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog services.CatalogService
	logger  *logger.Logger
}

func NewCatalogHandler(catalog services.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  log,
	}
}

// GetCategories lists the active categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.ActiveCategories(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list categories")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Categories retrieved successfully", categories, &utils.Meta{Count: len(categories)})
}

// GetCategoryCars lists the available cars of one category, filtered by price
func (h *CatalogHandler) GetCategoryCars(c *gin.Context) {
	filter := services.ParsePriceFilter(c.Query("price"))

	listing, err := h.catalog.CategoryListing(c.Request.Context(), c.Param("slug"), filter)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.NotFoundResponse(c, "Category")
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list category cars")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, listing.AvailableLabel(), listing, &utils.Meta{Count: len(listing.Cars)})
}

// GetCar returns one car with its category expanded
func (h *CatalogHandler) GetCar(c *gin.Context) {
	car, err := h.catalog.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			utils.NotFoundResponse(c, "Car")
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to get car")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Car retrieved successfully", car)
}
