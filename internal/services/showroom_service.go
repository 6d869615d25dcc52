package services

import (
	"context"
	"sync"
	"time"

	"vyronex/internal/utils"
	"vyronex/pkg/logger"
	"vyronex/pkg/maps"
)

const geocodeCacheTTL = 30 * 24 * time.Hour

type FeaturedCategory struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactSection struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

type ShowroomLocation struct {
	Address       string        `json:"address"`
	Coordinates   maps.Location `json:"coordinates"`
	PlaceID       string        `json:"placeId,omitempty"`
	DirectionsURL string        `json:"directionsUrl"`
}

type ContactInfo struct {
	Sections []ContactSection  `json:"sections"`
	Location *ShowroomLocation `json:"location"`
	CallURL  string            `json:"callUrl"`
	EmailURL string            `json:"emailUrl"`
}

type AlloyWheel struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

// JSONCache is the subset of the redis cache used for geocode results.
type JSONCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type ShowroomConfig struct {
	Address          string
	DefaultLatitude  float64
	DefaultLongitude float64
}

type ShowroomService interface {
	FeaturedCategories() []FeaturedCategory
	Features() []Feature
	Contact() ContactInfo
	AlloyShowcase() (featured []AlloyWheel, collection []AlloyWheel)
	Locate(ctx context.Context) *ShowroomLocation
}

type showroomService struct {
	geocoder maps.Geocoder
	cache    JSONCache
	config   ShowroomConfig
	logger   *logger.Logger

	mu       sync.RWMutex
	location *ShowroomLocation
}

// NewShowroomService serves the static showroom content. geocoder and cache
// may be nil, in which case the configured coordinates are used.
func NewShowroomService(geocoder maps.Geocoder, cache JSONCache, config ShowroomConfig, log *logger.Logger) ShowroomService {
	s := &showroomService{
		geocoder: geocoder,
		cache:    cache,
		config:   config,
		logger:   log,
	}
	s.location = s.fallbackLocation()
	return s
}

func (s *showroomService) FeaturedCategories() []FeaturedCategory {
	return []FeaturedCategory{
		{Title: "VIP Cars", Slug: "vip-cars"},
		{Title: "Luxury Cars", Slug: "luxury-cars"},
		{Title: "Branded Sports", Slug: "branded-sports-cars"},
		{Title: "4×4 Vehicles", Slug: "4x4-vehicles"},
		{Title: "Monster Trucks", Slug: "monster-trucks"},
	}
}

func (s *showroomService) Features() []Feature {
	return []Feature{
		{Title: "Premium Selection", Description: "Curated collection of VIP cars, luxury vehicles, branded sports cars, 4×4s, and monster trucks."},
		{Title: "Full Customization", Description: "Expert color charts, interior/exterior design, and complete body customization services."},
		{Title: "Test Drive Booking", Description: "Experience luxury firsthand with our seamless test drive scheduling system."},
	}
}

func (s *showroomService) Contact() ContactInfo {
	s.mu.RLock()
	location := s.location
	s.mu.RUnlock()

	return ContactInfo{
		Sections: []ContactSection{
			{Title: "Phone", Details: []string{"+91 8766476895"}},
			{Title: "Email", Details: []string{"info@vyronexMotors.com", "sales@vyronexMotors.com"}},
			{Title: "Address", Details: []string{"Pune, Maharashtra", "India"}},
			{Title: "Business Hours", Details: []string{"Mon - Fri: 9:00 AM - 8:00 PM", "Sat - Sun: 10:00 AM - 6:00 PM"}},
		},
		Location: location,
		CallURL:  "tel:+918766476895",
		EmailURL: "mailto:info@vyronexMotors.com",
	}
}

func (s *showroomService) AlloyShowcase() ([]AlloyWheel, []AlloyWheel) {
	featured := []AlloyWheel{
		{Name: "Matte Finish Alloys", Description: "Sophisticated matte black finish with premium durability", Price: "+$2,500"},
		{Name: "High-Performance Alloys", Description: "Lightweight forged alloys for enhanced performance", Price: "+$4,200"},
		{Name: "Budget-Friendly Alloys", Description: "Quality alloy wheels at an affordable price point", Price: "+$1,200"},
	}
	collection := []AlloyWheel{
		{Name: "Classic Black", Price: "+$1,800"},
		{Name: "Sport Chrome", Price: "+$2,200"},
		{Name: "Racing Red", Price: "+$3,500"},
		{Name: "Titanium Gray", Price: "+$2,100"},
		{Name: "Pearl White", Price: "+$1,950"},
		{Name: "Gunmetal Pro", Price: "+$2,800"},
		{Name: "Matte Black Pro", Price: "+$4,500"},
		{Name: "Carbon Fiber", Price: "+$5,200"},
	}
	return featured, collection
}

// Locate resolves the showroom coordinates, preferring the cache, then the
// geocoder, then the configured defaults. The result is kept for Contact.
func (s *showroomService) Locate(ctx context.Context) *ShowroomLocation {
	location := s.resolve(ctx)

	s.mu.Lock()
	s.location = location
	s.mu.Unlock()

	return location
}

func (s *showroomService) resolve(ctx context.Context) *ShowroomLocation {
	log := s.logger.WithContext(ctx).WithField("address", s.config.Address)
	key := utils.CacheGeocodePrefix + s.config.Address

	if s.cache != nil {
		var cached ShowroomLocation
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached
		}
	}

	if s.geocoder == nil {
		return s.fallbackLocation()
	}

	result, err := s.geocoder.Geocode(ctx, s.config.Address)
	if err != nil {
		log.WithError(err).Warn("Geocoding showroom address failed, using configured coordinates")
		return s.fallbackLocation()
	}

	location := &ShowroomLocation{
		Address:       result.Address,
		Coordinates:   result.Coordinates,
		PlaceID:       result.PlaceID,
		DirectionsURL: maps.DirectionsURL(result.Coordinates, result.PlaceID),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, location, geocodeCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache showroom location")
		}
	}

	return location
}

func (s *showroomService) fallbackLocation() *ShowroomLocation {
	coordinates := maps.Location{Latitude: s.config.DefaultLatitude, Longitude: s.config.DefaultLongitude}
	return &ShowroomLocation{
		Address:       s.config.Address,
		Coordinates:   coordinates,
		DirectionsURL: maps.DirectionsURL(coordinates, ""),
	}
}
