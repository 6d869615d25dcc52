// Package storage uploads customer-supplied images to a file store and
// returns the public URL they are served from.
package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
)

var ErrInvalidKey = errors.New("invalid storage key")

type StorageProvider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
}

type UploadRequest struct {
	Key          string            `json:"key"`
	Reader       io.Reader         `json:"-"`
	ContentType  string            `json:"content_type"`
	Size         int64             `json:"size"`
	Metadata     map[string]string `json:"metadata"`
	CacheControl string            `json:"cache_control"`
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	ETag string `json:"etag"`
}

// BucketConfig is shared by the cloud providers. Objects are stored under
// Prefix and served from CDNDomain when one is set.
type BucketConfig struct {
	Bucket    string
	Prefix    string
	CDNDomain string
}

func (b BucketConfig) validate() error {
	if b.Bucket == "" {
		return errors.New("storage bucket is required")
	}
	return nil
}

// objectName places key under the configured prefix.
func (b BucketConfig) objectName(key string) string {
	prefix := strings.Trim(b.Prefix, "/")
	key = strings.TrimLeft(key, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

// publicURL joins host and object name; the CDN domain wins over host when set.
func (b BucketConfig) publicURL(host, object string) string {
	if b.CDNDomain != "" {
		host = b.CDNDomain
	}
	u := url.URL{Scheme: "https", Host: host, Path: "/" + object}
	return u.String()
}
