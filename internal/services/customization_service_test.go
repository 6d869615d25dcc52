package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"vyronex/internal/models"
	"vyronex/pkg/logger"
	"vyronex/pkg/records"
	"vyronex/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	requests  []*storage.UploadRequest
	deleted   []string
	failWrite bool
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	if m.failWrite {
		return nil, errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[request.Key] = data
	m.requests = append(m.requests, request)
	return &storage.UploadResponse{
		Key:  request.Key,
		URL:  "https://cdn.example.com/" + request.Key,
		Size: int64(len(data)),
	}, nil
}

func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func validCustomizationForm() *models.CustomizationForm {
	return &models.CustomizationForm{
		CustomerName:        "Ishita Rao",
		CustomerEmail:       "ishita@example.com",
		CustomerPhone:       "9876543210",
		RequestTitle:        "Track day Huracan",
		CarModelPreference:  "Lamborghini Huracan",
		DetailedDescription: "Matte paint, carbon aero and a roll cage.",
		ColorPreferences:    "Verde Mantis",
	}
}

func newTestCustomizationService(t *testing.T, store storage.StorageProvider, notifier NotificationService, opts ...records.ClientOption) (CustomizationService, *records.MemoryStore) {
	t.Helper()
	client, memory := newShowroomClient(t, opts...)
	svc := NewCustomizationService(client, store, notifier, 1024, logger.NewNop())
	impl := svc.(*customizationService)
	impl.newID = sequentialIDs("ccr")
	impl.now = func() time.Time { return testNow.Add(1500 * time.Millisecond) }
	return svc, memory
}

func TestCustomizationService_SubmitWithSelection(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, memory := newTestCustomizationService(t, nil, notifier)

	form := validCustomizationForm()
	form.SelectedOptions = []string{"opt-red", "opt-leather", "opt-red"}

	request, err := svc.SubmitRequest(context.Background(), form, nil)
	require.NoError(t, err)

	assert.Equal(t, "ccr-1", request.ID)
	assert.Equal(t, models.StatusPending, request.RequestStatus)
	assert.Equal(t, "Track day Huracan", request.RequestTitle)
	assert.Equal(t, []string{"opt-red", "opt-leather"}, request.SelectedOptions.IDs())
	assert.True(t, request.SubmissionDateTime.Equal(testNow.Add(time.Second)))
	assert.Empty(t, request.DesignInspirationImages)

	assert.Equal(t, 1, memory.Count(models.CollectionCustomizationRequests))
	require.Len(t, notifier.requests, 1)
}

func TestCustomizationService_SubmitWithoutSelection(t *testing.T) {
	svc, memory := newTestCustomizationService(t, nil, nil)

	request, err := svc.SubmitRequest(context.Background(), validCustomizationForm(), nil)
	require.NoError(t, err)
	assert.Empty(t, request.SelectedOptions)

	stored, err := memory.Get(context.Background(), models.CollectionCustomizationRequests, request.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored, models.RefSelectedOptions)
}

func TestCustomizationService_InvalidForm(t *testing.T) {
	svc, memory := newTestCustomizationService(t, nil, nil)

	form := validCustomizationForm()
	form.RequestTitle = ""
	form.CustomerPhone = ""

	_, err := svc.SubmitRequest(context.Background(), form, nil)
	require.Error(t, err)
	assert.Zero(t, memory.Count(models.CollectionCustomizationRequests))
}

func TestCustomizationService_UploadsInspirationImage(t *testing.T) {
	files := newMemoryStorage()
	svc, _ := newTestCustomizationService(t, files, nil)
	board := tinyPNG(t)

	request, err := svc.SubmitRequest(context.Background(), validCustomizationForm(), &ImageUpload{
		Filename: "mood-board.PNG",
		Size:     int64(len(board)),
		Reader:   bytes.NewReader(board),
	})
	require.NoError(t, err)

	require.Len(t, files.requests, 1)
	uploaded := files.requests[0]
	assert.True(t, strings.HasPrefix(uploaded.Key, "inspiration/ccr-1/"))
	assert.True(t, strings.HasSuffix(uploaded.Key, ".png"))
	assert.Equal(t, "image/png", uploaded.ContentType)
	assert.Equal(t, "https://cdn.example.com/"+uploaded.Key, request.DesignInspirationImages)
	assert.Equal(t, board, files.objects[uploaded.Key])
}

func TestCustomizationService_RejectsBadUploads(t *testing.T) {
	ctx := context.Background()

	files := newMemoryStorage()
	svc, memory := newTestCustomizationService(t, files, nil)

	_, err := svc.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "brief.pdf", Size: 10, Reader: strings.NewReader("pdf")})
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = svc.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "huge.jpg", Size: 4096, Reader: strings.NewReader("jpg")})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = svc.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "renamed.jpg", Size: 3, Reader: strings.NewReader("txt")})
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = svc.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "liar.gif", Size: 3, Reader: strings.NewReader(strings.Repeat("g", 2048))})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	files.failWrite = true
	_, err = svc.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "ok.gif", Size: 3, Reader: strings.NewReader("gif")})
	require.Error(t, err)

	assert.Zero(t, memory.Count(models.CollectionCustomizationRequests))
	assert.Empty(t, files.objects)

	noStorage, _ := newTestCustomizationService(t, nil, nil)
	_, err = noStorage.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "ok.jpg", Size: 3, Reader: strings.NewReader("jpg")})
	assert.ErrorIs(t, err, ErrUploadsDisabled)
}

func TestCustomizationService_RemovesUploadWhenCreateFails(t *testing.T) {
	files := newMemoryStorage()
	svc, memory := newTestCustomizationService(t, files, nil)
	svc.(*customizationService).newID = func() string { return "ccr-fixed" }
	ctx := context.Background()

	_, err := svc.SubmitRequest(ctx, validCustomizationForm(), nil)
	require.NoError(t, err)

	_, err = svc.SubmitRequest(ctx, validCustomizationForm(), &ImageUpload{Filename: "wrap.webp", Size: 4, Reader: strings.NewReader("webp")})
	assert.ErrorIs(t, err, records.ErrDuplicateID)

	require.Len(t, files.deleted, 1)
	assert.Equal(t, files.requests[0].Key, files.deleted[0])
	assert.Empty(t, files.objects)
	assert.Equal(t, 1, memory.Count(models.CollectionCustomizationRequests))
}

func TestCustomizationService_ListRequestsExpandsOptions(t *testing.T) {
	svc, _ := newTestCustomizationService(t, nil, nil, tickingClock())
	ctx := context.Background()

	form := validCustomizationForm()
	form.SelectedOptions = []string{"opt-leather"}
	_, err := svc.SubmitRequest(ctx, form, nil)
	require.NoError(t, err)
	_, err = svc.SubmitRequest(ctx, validCustomizationForm(), nil)
	require.NoError(t, err)

	requests, err := svc.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, "ccr-2", requests[0].ID)
	assert.Equal(t, "ccr-1", requests[1].ID)
	values := requests[1].SelectedOptions.Values()
	require.Len(t, values, 1)
	assert.Equal(t, "Nappa Leather", values[0].OptionName)
}

func TestCustomizationService_GroupedOptions(t *testing.T) {
	svc, _ := newTestCustomizationService(t, nil, nil)

	groups, err := svc.GroupedOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Paint", groups[0].Type)
	assert.Equal(t, "Interior", groups[1].Type)
	assert.Equal(t, models.OtherOptionType, groups[2].Type)

	names := func(g models.OptionGroup) []string {
		out := make([]string, 0, len(g.Options))
		for _, o := range g.Options {
			out = append(out, o.OptionName)
		}
		return out
	}
	assert.Equal(t, []string{"Rosso Corsa", "Obsidian Black"}, names(groups[0]))
	assert.Equal(t, []string{"Satin Wrap", "Racing Stripe"}, names(groups[2]))
}
