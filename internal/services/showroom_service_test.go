package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"vyronex/internal/utils"
	"vyronex/pkg/cache"
	"vyronex/pkg/logger"
	"vyronex/pkg/maps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	calls  int
	result *maps.GeocodeResult
	err    error
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*maps.GeocodeResult, error) {
	f.calls++
	return f.result, f.err
}

type jsonCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newJSONCache() *jsonCache {
	return &jsonCache{entries: make(map[string][]byte)}
}

func (c *jsonCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *jsonCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

var testShowroomConfig = ShowroomConfig{
	Address:          "Pune, Maharashtra, India",
	DefaultLatitude:  18.5204,
	DefaultLongitude: 73.8567,
}

func TestShowroomService_LocateGeocodesAndCaches(t *testing.T) {
	geocoder := &fakeGeocoder{result: &maps.GeocodeResult{
		PlaceID:     "ChIJARFGZy6_wjsRQ-Oenb9DjYI",
		Address:     "Pune, Maharashtra, India",
		Coordinates: maps.Location{Latitude: 18.52043, Longitude: 73.85674},
	}}
	store := newJSONCache()
	svc := NewShowroomService(geocoder, store, testShowroomConfig, logger.NewNop())
	ctx := context.Background()

	first := svc.Locate(ctx)
	assert.Equal(t, "ChIJARFGZy6_wjsRQ-Oenb9DjYI", first.PlaceID)
	assert.Contains(t, first.DirectionsURL, "destination_place_id=ChIJARFGZy6_wjsRQ-Oenb9DjYI")
	assert.Contains(t, store.entries, utils.CacheGeocodePrefix+testShowroomConfig.Address)

	second := svc.Locate(ctx)
	assert.Equal(t, 1, geocoder.calls)
	assert.Equal(t, first, second)

	assert.Equal(t, first, svc.Contact().Location)
}

func TestShowroomService_LocateFallsBack(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("REQUEST_DENIED")}
	svc := NewShowroomService(geocoder, nil, testShowroomConfig, logger.NewNop())

	location := svc.Locate(context.Background())
	assert.Equal(t, maps.Location{Latitude: 18.5204, Longitude: 73.8567}, location.Coordinates)
	assert.Equal(t, "Pune, Maharashtra, India", location.Address)
	assert.Empty(t, location.PlaceID)

	offline := NewShowroomService(nil, nil, testShowroomConfig, logger.NewNop())
	assert.Equal(t, location, offline.Locate(context.Background()))
}

func TestShowroomService_StaticContent(t *testing.T) {
	svc := NewShowroomService(nil, nil, testShowroomConfig, logger.NewNop())

	featured := svc.FeaturedCategories()
	require.Len(t, featured, 5)
	assert.Equal(t, "vip-cars", featured[0].Slug)
	assert.Equal(t, "monster-trucks", featured[4].Slug)
	assert.Len(t, svc.Features(), 3)

	contact := svc.Contact()
	require.Len(t, contact.Sections, 4)
	assert.Equal(t, "Phone", contact.Sections[0].Title)
	assert.Equal(t, "tel:+918766476895", contact.CallURL)
	require.NotNil(t, contact.Location)

	alloys, collection := svc.AlloyShowcase()
	assert.Len(t, alloys, 3)
	assert.Len(t, collection, 8)
}
