package api

import (
	"errors"
	"net/http"

	"vyronex/internal/services"
	"vyronex/internal/utils"
	"vyronex/internal/validators"
	"vyronex/pkg/logger"

	"github.com/gin-gonic/gin"
)

// FeedServer attaches staff dashboards to the live submission feed.
type FeedServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, subscriber string) error
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type StaffHandler struct {
	staff         services.StaffService
	bookings      services.TestDriveService
	customization services.CustomizationService
	feed          FeedServer
	logger        *logger.Logger
}

func NewStaffHandler(
	staff services.StaffService,
	bookings services.TestDriveService,
	customization services.CustomizationService,
	feed FeedServer,
	log *logger.Logger,
) *StaffHandler {
	return &StaffHandler{
		staff:         staff,
		bookings:      bookings,
		customization: customization,
		feed:          feed,
		logger:        log,
	}
}

// Login exchanges the configured staff credentials for an access token
func (h *StaffHandler) Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&request); errs != nil {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	token, err := h.staff.Login(request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStaffDisabled):
			utils.ServiceUnavailableResponse(c, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			h.logger.WithContext(c.Request.Context()).WithField("username", request.Username).Warn("Rejected staff login")
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", utils.ErrInvalidCredentials)
		default:
			h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to issue staff token")
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.SuccessResponse(c, "Login successful", token)
}

// ListTestDrives returns every booking, newest first
func (h *StaffHandler) ListTestDrives(c *gin.Context) {
	bookings, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list test drive bookings")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Test drive bookings retrieved successfully", bookings, &utils.Meta{Count: len(bookings)})
}

// ListCustomizationRequests returns every customization request, newest first
func (h *StaffHandler) ListCustomizationRequests(c *gin.Context) {
	requests, err := h.customization.ListRequests(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list customization requests")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Customization requests retrieved successfully", requests, &utils.Meta{Count: len(requests)})
}

// Feed upgrades to a websocket that receives every new booking and request
func (h *StaffHandler) Feed(c *gin.Context) {
	if h.feed == nil {
		utils.ServiceUnavailableResponse(c, "live feed is not running")
		return
	}

	subscriber := c.GetString(utils.ContextStaffUser)
	if err := h.feed.ServeWS(c.Writer, c.Request, subscriber); err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Warn("Staff feed upgrade failed")
	}
}
