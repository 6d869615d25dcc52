package api

import (
	"errors"

	"vyronex/internal/handlers/shared"
	"vyronex/internal/models"
	"vyronex/internal/services"
	"vyronex/internal/utils"
	"vyronex/internal/validators"
	"vyronex/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	bookings      services.TestDriveService
	customization services.CustomizationService
	logger        *logger.Logger
}

func NewSubmissionHandler(bookings services.TestDriveService, customization services.CustomizationService, log *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		bookings:      bookings,
		customization: customization,
		logger:        log,
	}
}

// CreateTestDrive books a test drive for the car in the path
func (h *SubmissionHandler) CreateTestDrive(c *gin.Context) {
	var form models.TestDriveForm
	if err := c.ShouldBind(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, err := h.bookings.BookTestDrive(c.Request.Context(), c.Param("id"), &form)
	if err != nil {
		var verrs validators.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			utils.ValidationErrorResponse(c, verrs.Fields())
		case errors.Is(err, services.ErrCarNotFound):
			utils.NotFoundResponse(c, "Car")
		default:
			h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to book test drive")
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.CreatedResponse(c, "Booking submitted. We will contact you shortly to confirm your test drive.", booking)
}

// GetCustomizationOptions returns the options grouped by type
func (h *SubmissionHandler) GetCustomizationOptions(c *gin.Context) {
	groups, err := h.customization.GroupedOptions(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list customization options")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Customization options retrieved successfully", groups, &utils.Meta{Count: len(groups)})
}

// CreateCustomizationRequest accepts JSON, or a multipart form with an
// optional inspiration image
func (h *SubmissionHandler) CreateCustomizationRequest(c *gin.Context) {
	var form models.CustomizationForm
	if err := c.ShouldBind(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	upload, closer, err := shared.FormImage(c, shared.InspirationImageField)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image: "+err.Error())
		return
	}
	defer closer.Close()

	request, err := h.customization.SubmitRequest(c.Request.Context(), &form, upload)
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			utils.ValidationErrorResponse(c, verrs.Fields())
			return
		}
		if message, ok := shared.ImageErrorMessage(err); ok {
			utils.ValidationErrorResponse(c, map[string]string{shared.InspirationImageField: message})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to submit customization request")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Request submitted. Our customization team will contact you shortly.", request)
}
