package services

import (
	"context"
	"sort"

	"vyronex/internal/models"
	"vyronex/internal/validators"
	"vyronex/pkg/logger"
	"vyronex/pkg/records"

	"github.com/google/uuid"
)

type TestDriveService interface {
	BookTestDrive(ctx context.Context, carID string, form *models.TestDriveForm) (*models.TestDriveBooking, error)
	ListBookings(ctx context.Context) ([]models.TestDriveBooking, error)
}

type testDriveService struct {
	client   *records.Client
	catalog  CatalogService
	notifier NotificationService
	newID    func() string
	logger   *logger.Logger
}

func NewTestDriveService(client *records.Client, catalog CatalogService, notifier NotificationService, log *logger.Logger) TestDriveService {
	return &testDriveService{
		client:   client,
		catalog:  catalog,
		notifier: notifier,
		newID:    uuid.NewString,
		logger:   log,
	}
}

// BookTestDrive validates the form, then stores exactly one pending booking
// linked to the car.
func (s *testDriveService) BookTestDrive(ctx context.Context, carID string, form *models.TestDriveForm) (*models.TestDriveBooking, error) {
	if errs := validators.ValidateStruct(form); errs != nil {
		return nil, errs
	}

	car, err := s.catalog.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	booking := &models.TestDriveBooking{
		Record:        models.Record{ID: s.newID()},
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		CustomerPhone: form.CustomerPhone,
		CarModel:      car.DisplayName(),
		PreferredDate: form.PreferredDate,
		PreferredTime: form.PreferredTime,
		BookingStatus: models.StatusPending,
	}

	created, err := records.Create(ctx, s.client, models.CollectionTestDriveBookings, booking, records.References{
		models.RefPremiumCars: {car.ID},
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogSubmission(models.CollectionTestDriveBookings, created.ID, map[string]interface{}{
		"car_id": car.ID,
	})
	if s.notifier != nil {
		s.notifier.TestDriveBooked(ctx, created)
	}

	return created, nil
}

// ListBookings returns every booking, newest first, with the booked car expanded.
func (s *testDriveService) ListBookings(ctx context.Context) ([]models.TestDriveBooking, error) {
	all, err := records.GetAll[models.TestDriveBooking](ctx, s.client, models.CollectionTestDriveBookings, models.RefPremiumCars)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all.Items, func(i, j int) bool {
		return newer(all.Items[i].Record, all.Items[j].Record)
	})
	return all.Items, nil
}

func newer(a, b models.Record) bool {
	if a.CreatedDate == nil || b.CreatedDate == nil {
		return a.CreatedDate != nil
	}
	return a.CreatedDate.After(*b.CreatedDate)
}
