// Package shared holds request helpers used by both the page and API handlers.
package shared

import (
	"errors"
	"io"
	"net/http"

	"vyronex/internal/services"

	"github.com/gin-gonic/gin"
)

// InspirationImageField is the multipart field carrying a design inspiration image.
const InspirationImageField = "inspirationImage"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FormImage opens the optional image in field. It returns a nil upload when
// the request has no such file or is not multipart at all. The returned
// closer must be closed once the upload has been consumed.
func FormImage(c *gin.Context, field string) (*services.ImageUpload, io.Closer, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nopCloser{}, nil
		}
		return nil, nopCloser{}, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nopCloser{}, err
	}

	return &services.ImageUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}, file, nil
}

// ImageErrorMessage is the user-facing message for an upload rejected by the
// customization service, and false for any other error.
func ImageErrorMessage(err error) (string, bool) {
	for _, known := range []error{services.ErrImageTooLarge, services.ErrUploadsDisabled, services.ErrUnsupportedImage} {
		if errors.Is(err, known) {
			return known.Error(), true
		}
	}
	return "", false
}
