// Package maps geocodes the showroom address for the contact page.
package maps

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

var ErrNoResults = errors.New("address did not geocode to any result")

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}

type GeocodeResult struct {
	PlaceID     string   `json:"place_id"`
	Address     string   `json:"formatted_address"`
	Coordinates Location `json:"geometry"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DirectionsURL links to turn-by-turn directions to loc in Google Maps.
func DirectionsURL(loc Location, placeID string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", fmt.Sprintf("%.6f,%.6f", loc.Latitude, loc.Longitude))
	if placeID != "" {
		q.Set("destination_place_id", placeID)
	}
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
