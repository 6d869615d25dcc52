package services

import (
	"context"
	"testing"

	"vyronex/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carIDs(cars []models.PremiumCar) []string {
	ids := make([]string, 0, len(cars))
	for _, car := range cars {
		ids = append(ids, car.ID)
	}
	return ids
}

func TestCatalogService_ActiveCategories(t *testing.T) {
	client, _ := newShowroomClient(t)
	svc := NewCatalogService(client)

	categories, err := svc.ActiveCategories(context.Background())
	require.NoError(t, err)

	slugs := make([]string, 0, len(categories))
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"vip-cars", "branded-sports-cars"}, slugs)
}

func TestCatalogService_CategoryListingPriceFilter(t *testing.T) {
	client, _ := newShowroomClient(t)
	svc := NewCatalogService(client)
	ctx := context.Background()

	tests := []struct {
		filter PriceFilter
		want   []string
	}{
		{filter: PriceAll, want: []string{"car-ghost", "car-maybach", "car-mystery"}},
		{filter: PriceLow, want: []string{"car-maybach", "car-mystery"}},
		{filter: PriceHigh, want: []string{"car-ghost"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			listing, err := svc.CategoryListing(ctx, "vip-cars", tt.filter)
			require.NoError(t, err)

			assert.Equal(t, "cat-vip", listing.Category.ID)
			assert.Equal(t, tt.want, carIDs(listing.Cars))
			for _, car := range listing.Cars {
				assert.True(t, car.Availability)
				require.True(t, car.Category.Expanded())
				assert.Equal(t, "VIP Cars", car.Category.Value.CategoryName)
			}
		})
	}
}

func TestCatalogService_CategoryListingIncludesInactiveCategoryBySlug(t *testing.T) {
	client, _ := newShowroomClient(t)
	svc := NewCatalogService(client)

	listing, err := svc.CategoryListing(context.Background(), "monster-trucks", PriceAll)
	require.NoError(t, err)
	assert.Empty(t, listing.Cars)
	assert.Equal(t, "0 vehicles available", listing.AvailableLabel())
}

func TestCatalogService_UnknownSlug(t *testing.T) {
	client, _ := newShowroomClient(t)
	svc := NewCatalogService(client)

	_, err := svc.CategoryListing(context.Background(), "hypercars", PriceAll)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_GetCar(t *testing.T) {
	client, _ := newShowroomClient(t)
	svc := NewCatalogService(client)
	ctx := context.Background()

	car, err := svc.GetCar(ctx, "car-ghost")
	require.NoError(t, err)
	assert.Equal(t, "Rolls-Royce Ghost", car.DisplayName())
	require.True(t, car.Category.Expanded())
	assert.Equal(t, "vip-cars", car.Category.Value.Slug)
	assert.Equal(t, []string{"ghost-front.jpg", "ghost-side.jpg"}, car.Gallery())

	orphan, err := svc.GetCar(ctx, "car-orphan")
	require.NoError(t, err)
	assert.False(t, orphan.Category.Expanded())

	_, err = svc.GetCar(ctx, "car-missing")
	assert.ErrorIs(t, err, ErrCarNotFound)

	_, err = svc.GetCar(ctx, "")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestCatalogService_CancelledContext(t *testing.T) {
	client, _ := newShowroomClient(t)
	svc := NewCatalogService(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CategoryListing(ctx, "vip-cars", PriceAll)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParsePriceFilter(t *testing.T) {
	assert.Equal(t, PriceLow, ParsePriceFilter("low"))
	assert.Equal(t, PriceHigh, ParsePriceFilter(" HIGH "))
	assert.Equal(t, PriceAll, ParsePriceFilter("all"))
	assert.Equal(t, PriceAll, ParsePriceFilter("cheap"))
	assert.Equal(t, PriceAll, ParsePriceFilter(""))
}

func TestPriceFilter_Boundary(t *testing.T) {
	atThreshold := &models.PremiumCar{Price: 200000}
	below := &models.PremiumCar{Price: 199999.99}
	unpriced := &models.PremiumCar{}

	assert.True(t, PriceHigh.Matches(atThreshold))
	assert.False(t, PriceLow.Matches(atThreshold))
	assert.True(t, PriceLow.Matches(below))
	assert.True(t, PriceLow.Matches(unpriced))
	assert.False(t, PriceHigh.Matches(unpriced))
	assert.True(t, PriceAll.Matches(unpriced))
}

func TestCategoryListing_AvailableLabel(t *testing.T) {
	one := &CategoryListing{Cars: make([]models.PremiumCar, 1)}
	three := &CategoryListing{Cars: make([]models.PremiumCar, 3)}
	assert.Equal(t, "1 vehicle available", one.AvailableLabel())
	assert.Equal(t, "3 vehicles available", three.AvailableLabel())
}
