package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"vyronex/internal/models"
	"vyronex/internal/utils"
	"vyronex/internal/validators"
	"vyronex/pkg/logger"
	"vyronex/pkg/records"
	"vyronex/pkg/storage"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedImage = errors.New("inspiration image must be a jpg, png, gif or webp file")
	ErrImageTooLarge    = errors.New("inspiration image is too large")
	ErrUploadsDisabled  = errors.New("image uploads are not configured")
)

// ImageUpload is an optional design inspiration image sent with a request.
type ImageUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type CustomizationService interface {
	Options(ctx context.Context) ([]models.CustomizationOption, error)
	GroupedOptions(ctx context.Context) ([]models.OptionGroup, error)
	SubmitRequest(ctx context.Context, form *models.CustomizationForm, image *ImageUpload) (*models.CustomizationRequest, error)
	ListRequests(ctx context.Context) ([]models.CustomizationRequest, error)
}

type customizationService struct {
	client        *records.Client
	storage       storage.StorageProvider
	notifier      NotificationService
	maxUploadSize int64
	newID         func() string
	now           func() time.Time
	logger        *logger.Logger
}

func NewCustomizationService(client *records.Client, store storage.StorageProvider, notifier NotificationService, maxUploadSize int64, log *logger.Logger) CustomizationService {
	if maxUploadSize <= 0 {
		maxUploadSize = utils.MaxImageSize
	}
	return &customizationService{
		client:        client,
		storage:       store,
		notifier:      notifier,
		maxUploadSize: maxUploadSize,
		newID:         uuid.NewString,
		now:           time.Now,
		logger:        log,
	}
}

func (s *customizationService) Options(ctx context.Context) ([]models.CustomizationOption, error) {
	all, err := records.GetAll[models.CustomizationOption](ctx, s.client, models.CollectionCustomizationOptions)
	if err != nil {
		return nil, err
	}
	return all.Items, nil
}

func (s *customizationService) GroupedOptions(ctx context.Context) ([]models.OptionGroup, error) {
	options, err := s.Options(ctx)
	if err != nil {
		return nil, err
	}
	return GroupOptions(options), nil
}

// SubmitRequest stores one pending request. The selected options are linked
// only when there are any; an uploaded image is removed again if the
// request cannot be stored.
func (s *customizationService) SubmitRequest(ctx context.Context, form *models.CustomizationForm, image *ImageUpload) (*models.CustomizationRequest, error) {
	if errs := validators.ValidateStruct(form); errs != nil {
		return nil, errs
	}

	request := &models.CustomizationRequest{
		Record:              models.Record{ID: s.newID()},
		CustomerName:        form.CustomerName,
		CustomerEmail:       form.CustomerEmail,
		CustomerPhone:       form.CustomerPhone,
		RequestTitle:        form.RequestTitle,
		CarModelPreference:  form.CarModelPreference,
		DetailedDescription: form.DetailedDescription,
		ColorPreferences:    form.ColorPreferences,
		SubmissionDateTime:  s.now().UTC().Truncate(time.Second),
		RequestStatus:       models.StatusPending,
	}

	var uploadedKey string
	if image != nil {
		uploaded, err := s.uploadImage(ctx, request.ID, image)
		if err != nil {
			return nil, err
		}
		uploadedKey = uploaded.Key
		request.DesignInspirationImages = uploaded.URL
	}

	refs := records.References{}
	if selected := NewSelection(form.SelectedOptions); len(selected) > 0 {
		refs[models.RefSelectedOptions] = selected
	}

	created, err := records.Create(ctx, s.client, models.CollectionCustomizationRequests, request, refs)
	if err != nil {
		if uploadedKey != "" {
			if delErr := s.storage.Delete(context.WithoutCancel(ctx), uploadedKey); delErr != nil {
				s.logger.WithContext(ctx).WithError(delErr).Warn("Failed to remove orphaned inspiration image")
			}
		}
		return nil, err
	}

	s.logger.WithContext(ctx).LogSubmission(models.CollectionCustomizationRequests, created.ID, map[string]interface{}{
		"selected_options": len(created.SelectedOptions),
		"has_image":        uploadedKey != "",
	})
	if s.notifier != nil {
		s.notifier.CustomizationRequested(ctx, created)
	}

	return created, nil
}

func (s *customizationService) uploadImage(ctx context.Context, requestID string, image *ImageUpload) (*storage.UploadResponse, error) {
	if s.storage == nil {
		return nil, ErrUploadsDisabled
	}
	contentType, ok := utils.ImageContentType(image.Filename)
	if !ok {
		return nil, ErrUnsupportedImage
	}
	if image.Size > s.maxUploadSize {
		return nil, ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(image.Reader, s.maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxUploadSize {
		return nil, ErrImageTooLarge
	}
	data, err = utils.FitImage(data, image.Filename, utils.MaxImageWidth, utils.MaxImageHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	uploaded, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:          utils.InspirationImageKey(requestID, image.Filename),
		Reader:       bytes.NewReader(data),
		ContentType:  contentType,
		Size:         int64(len(data)),
		CacheControl: "public, max-age=31536000",
		Metadata:     map[string]string{"request-id": requestID},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", utils.ErrFileUploadFailed, err)
	}
	return uploaded, nil
}

// ListRequests returns every request, newest first, with selected options expanded.
func (s *customizationService) ListRequests(ctx context.Context) ([]models.CustomizationRequest, error) {
	all, err := records.GetAll[models.CustomizationRequest](ctx, s.client, models.CollectionCustomizationRequests, models.RefSelectedOptions)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all.Items, func(i, j int) bool {
		return newer(all.Items[i].Record, all.Items[j].Record)
	})
	return all.Items, nil
}
