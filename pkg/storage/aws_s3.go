package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	BucketConfig
	Region string
}

type AWSS3Storage struct {
	client *s3.Client
	config S3Config
}

func NewAWSS3Storage(ctx context.Context, cfg S3Config) (*AWSS3Storage, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSS3Storage{
		client: s3.NewFromConfig(awsConfig),
		config: cfg,
	}, nil
}

func (a *AWSS3Storage) Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error) {
	object := a.config.objectName(request.Key)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(a.config.Bucket),
		Key:         aws.String(object),
		Body:        request.Reader,
		ContentType: aws.String(request.ContentType),
		Metadata:    request.Metadata,
	}
	if request.Size > 0 {
		input.ContentLength = aws.Int64(request.Size)
	}
	if request.CacheControl != "" {
		input.CacheControl = aws.String(request.CacheControl)
	}

	out, err := a.client.PutObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("s3 put %s: %w", object, err)
	}

	return &UploadResponse{
		Key:  request.Key,
		URL:  a.config.publicURL(fmt.Sprintf("%s.s3.%s.amazonaws.com", a.config.Bucket, a.config.Region), object),
		Size: request.Size,
		ETag: aws.ToString(out.ETag),
	}, nil
}

// Delete removes the object. S3 reports success for missing keys.
func (a *AWSS3Storage) Delete(ctx context.Context, key string) error {
	object := a.config.objectName(key)
	if _, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.config.Bucket),
		Key:    aws.String(object),
	}); err != nil {
		return fmt.Errorf("s3 delete %s: %w", object, err)
	}
	return nil
}
