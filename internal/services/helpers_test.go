package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"vyronex/internal/models"
	"vyronex/pkg/records"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)

type recordingNotifier struct {
	mu       sync.Mutex
	bookings []*models.TestDriveBooking
	requests []*models.CustomizationRequest
}

func (r *recordingNotifier) TestDriveBooked(ctx context.Context, booking *models.TestDriveBooking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
}

func (r *recordingNotifier) CustomizationRequested(ctx context.Context, request *models.CustomizationRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, request)
}

func (r *recordingNotifier) Wait() {}

func newShowroomClient(t *testing.T, opts ...records.ClientOption) (*records.Client, *records.MemoryStore) {
	t.Helper()

	store := records.NewMemoryStore()
	opts = append([]records.ClientOption{records.WithClock(func() time.Time { return testNow })}, opts...)
	client := records.NewClient(store, models.Schema(), opts...)
	ctx := context.Background()

	categories := []models.CarCategory{
		{Record: models.Record{ID: "cat-vip"}, CategoryName: "VIP Cars", Slug: "vip-cars", IsActive: true},
		{Record: models.Record{ID: "cat-sports"}, CategoryName: "Branded Sports", Slug: "branded-sports-cars", IsActive: true},
		{Record: models.Record{ID: "cat-trucks"}, CategoryName: "Monster Trucks", Slug: "monster-trucks", IsActive: false},
	}
	for i := range categories {
		_, err := records.Create(ctx, client, models.CollectionCarCategories, &categories[i], nil)
		require.NoError(t, err)
	}

	cars := []struct {
		car      models.PremiumCar
		category string
	}{
		{models.PremiumCar{Record: models.Record{ID: "car-ghost"}, Make: "Rolls-Royce", Model: "Ghost", Price: 340000, Availability: true, MainImage: "ghost-front.jpg", GalleryImages: "ghost-side.jpg"}, "cat-vip"},
		{models.PremiumCar{Record: models.Record{ID: "car-maybach"}, Make: "Mercedes", Model: "Maybach S680", Price: 199999, Availability: true}, "cat-vip"},
		{models.PremiumCar{Record: models.Record{ID: "car-mystery"}, Make: "Bentley", Model: "Prototype", Availability: true}, "cat-vip"},
		{models.PremiumCar{Record: models.Record{ID: "car-sold"}, Make: "Bentley", Model: "Mulsanne", Price: 310000, Availability: false}, "cat-vip"},
		{models.PremiumCar{Record: models.Record{ID: "car-huracan"}, Make: "Lamborghini", Model: "Huracan", Price: 260000, Availability: true}, "cat-sports"},
		{models.PremiumCar{Record: models.Record{ID: "car-orphan"}, Make: "Koenigsegg", Model: "Jesko", Price: 3000000, Availability: true}, "cat-deleted"},
	}
	for i := range cars {
		_, err := records.Create(ctx, client, models.CollectionPremiumCars, &cars[i].car, records.References{
			models.RefCategory: {cars[i].category},
		})
		require.NoError(t, err)
	}

	options := []models.CustomizationOption{
		{Record: models.Record{ID: "opt-red"}, OptionName: "Rosso Corsa", OptionType: "Paint", ColorHexCode: "#D40000"},
		{Record: models.Record{ID: "opt-leather"}, OptionName: "Nappa Leather", OptionType: "Interior"},
		{Record: models.Record{ID: "opt-wrap"}, OptionName: "Satin Wrap"},
		{Record: models.Record{ID: "opt-black"}, OptionName: "Obsidian Black", OptionType: "Paint"},
		{Record: models.Record{ID: "opt-decal"}, OptionName: "Racing Stripe"},
	}
	for i := range options {
		_, err := records.Create(ctx, client, models.CollectionCustomizationOptions, &options[i], nil)
		require.NoError(t, err)
	}

	return client, store
}

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// tickingClock advances by a minute on every call.
func tickingClock() records.ClientOption {
	var mu sync.Mutex
	now := testNow
	return records.WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	})
}
