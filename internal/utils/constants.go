package utils

import "time"

const (
	AppName = "Vyronex Motors"

	// Price split between the "low" and "high" listing filters.
	PriceThreshold = 200000.0

	MaxImageSize = 8 * 1024 * 1024

	SubmissionWindow = time.Hour
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidToken       = "invalid token"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrNotFound           = "not found"
	ErrValidationFailed   = "validation failed"
	ErrFileUploadFailed   = "file upload failed"
	ErrTooManyRequests    = "too many submissions, please try again later"
)

// Context keys set by middleware.
const (
	ContextRequestID = "request_id"
	ContextStaffUser = "staff_user"
)

// Cache Keys
const (
	CacheRateLimitPrefix = "rate_limit:"
	CacheGeocodePrefix   = "geocode:"
)

// Event Types
const (
	EventTestDriveBooked        = "test_drive_booked"
	EventCustomizationRequested = "customization_requested"
)
