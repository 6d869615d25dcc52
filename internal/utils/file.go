package utils

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// imageTypes are the accepted inspiration image extensions.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func imageExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ImageContentType returns the content type for an accepted image filename.
func ImageContentType(filename string) (string, bool) {
	contentType, ok := imageTypes[imageExt(filename)]
	return contentType, ok
}

// InspirationImageKey is the storage key of an image attached to a
// customization request. The original name is dropped; only its extension is kept.
func InspirationImageKey(requestID, filename string) string {
	return path.Join("inspiration", requestID, uuid.NewString()+imageExt(filename))
}
