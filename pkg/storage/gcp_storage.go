package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSConfig struct {
	BucketConfig
	CredentialsFile string
}

type GCPStorage struct {
	client *storage.Client
	config GCSConfig
}

func NewGCPStorage(ctx context.Context, cfg GCSConfig) (*GCPStorage, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCPStorage{client: client, config: cfg}, nil
}

func (g *GCPStorage) object(key string) (*storage.ObjectHandle, string) {
	name := g.config.objectName(key)
	return g.client.Bucket(g.config.Bucket).Object(name), name
}

func (g *GCPStorage) Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error) {
	handle, name := g.object(request.Key)

	w := handle.NewWriter(ctx)
	w.ContentType = request.ContentType
	w.CacheControl = request.CacheControl
	w.Metadata = request.Metadata

	written, err := io.Copy(w, request.Reader)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("gcs write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gcs finalize %s: %w", name, err)
	}

	return &UploadResponse{
		Key:  request.Key,
		URL:  g.url(name),
		Size: written,
		ETag: w.Attrs().Etag,
	}, nil
}

func (g *GCPStorage) url(name string) string {
	if g.config.CDNDomain != "" {
		return g.config.publicURL("", name)
	}
	return g.config.publicURL("storage.googleapis.com", g.config.Bucket+"/"+name)
}

func (g *GCPStorage) Delete(ctx context.Context, key string) error {
	handle, name := g.object(key)
	if err := handle.Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %s: %w", name, err)
	}
	return nil
}

func (g *GCPStorage) Close() error {
	return g.client.Close()
}
