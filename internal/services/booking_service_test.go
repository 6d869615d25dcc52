package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"vyronex/internal/models"
	"vyronex/internal/validators"
	"vyronex/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestDriveForm() *models.TestDriveForm {
	return &models.TestDriveForm{
		CustomerName:  "Aarav Mehta",
		CustomerEmail: "aarav@example.com",
		CustomerPhone: "+91 98765 43210",
		PreferredDate: "2025-07-01",
		PreferredTime: "11:30",
	}
}

func TestTestDriveService_BookTestDrive(t *testing.T) {
	client, store := newShowroomClient(t)
	notifier := &recordingNotifier{}
	svc := NewTestDriveService(client, NewCatalogService(client), notifier, logger.NewNop())
	svc.(*testDriveService).newID = sequentialIDs("tdb")

	booking, err := svc.BookTestDrive(context.Background(), "car-ghost", validTestDriveForm())
	require.NoError(t, err)

	assert.Equal(t, "tdb-1", booking.ID)
	assert.Equal(t, "Aarav Mehta", booking.CustomerName)
	assert.Equal(t, "Rolls-Royce Ghost", booking.CarModel)
	assert.Equal(t, "2025-07-01", booking.PreferredDate)
	assert.Equal(t, "11:30", booking.PreferredTime)
	assert.Equal(t, models.StatusPending, booking.BookingStatus)
	assert.Equal(t, []string{"car-ghost"}, booking.PremiumCars.IDs())
	require.NotNil(t, booking.CreatedDate)
	assert.True(t, booking.CreatedDate.Equal(testNow))

	assert.Equal(t, 1, store.Count(models.CollectionTestDriveBookings))
	require.Len(t, notifier.bookings, 1)
	assert.Equal(t, "tdb-1", notifier.bookings[0].ID)
}

func TestTestDriveService_InvalidFormStoresNothing(t *testing.T) {
	client, store := newShowroomClient(t)
	notifier := &recordingNotifier{}
	svc := NewTestDriveService(client, NewCatalogService(client), notifier, logger.NewNop())

	form := validTestDriveForm()
	form.CustomerEmail = "not-an-email"
	form.PreferredDate = "01/07/2025"
	form.CustomerName = ""

	_, err := svc.BookTestDrive(context.Background(), "car-ghost", form)
	require.Error(t, err)

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.Fields()
	assert.Contains(t, fields, "customerName")
	assert.Contains(t, fields, "customerEmail")
	assert.Contains(t, fields, "preferredDate")
	assert.NotContains(t, fields, "preferredTime")

	assert.Zero(t, store.Count(models.CollectionTestDriveBookings))
	assert.Empty(t, notifier.bookings)
}

func TestTestDriveService_UnknownCar(t *testing.T) {
	client, store := newShowroomClient(t)
	svc := NewTestDriveService(client, NewCatalogService(client), nil, logger.NewNop())

	_, err := svc.BookTestDrive(context.Background(), "car-missing", validTestDriveForm())
	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.Zero(t, store.Count(models.CollectionTestDriveBookings))
}

func TestTestDriveService_ListBookingsNewestFirst(t *testing.T) {
	client, _ := newShowroomClient(t, tickingClock())
	svc := NewTestDriveService(client, NewCatalogService(client), nil, logger.NewNop())
	svc.(*testDriveService).newID = sequentialIDs("tdb")
	ctx := context.Background()

	_, err := svc.BookTestDrive(ctx, "car-ghost", validTestDriveForm())
	require.NoError(t, err)
	_, err = svc.BookTestDrive(ctx, "car-huracan", validTestDriveForm())
	require.NoError(t, err)

	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "tdb-2", bookings[0].ID)
	assert.Equal(t, "tdb-1", bookings[1].ID)
	require.Len(t, bookings[0].PremiumCars, 1)
	require.True(t, bookings[0].PremiumCars[0].Expanded())
	assert.Equal(t, "Huracan", bookings[0].PremiumCars[0].Value.Model)
}

func TestNewer(t *testing.T) {
	early := testNow
	late := testNow.Add(time.Hour)

	assert.True(t, newer(models.Record{CreatedDate: &late}, models.Record{CreatedDate: &early}))
	assert.False(t, newer(models.Record{CreatedDate: &early}, models.Record{CreatedDate: &late}))
	assert.True(t, newer(models.Record{CreatedDate: &early}, models.Record{}))
	assert.False(t, newer(models.Record{}, models.Record{CreatedDate: &early}))
	assert.False(t, newer(models.Record{}, models.Record{}))
}
