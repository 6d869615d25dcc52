package models

import (
	"strings"

	"vyronex/pkg/records"
)

type PremiumCar struct {
	Record `bson:",inline"`

	Make                  string                             `json:"make,omitempty" bson:"make,omitempty"`
	Model                 string                             `json:"model,omitempty" bson:"model,omitempty"`
	Year                  int                                `json:"year,omitempty" bson:"year,omitempty"`
	Price                 float64                            `json:"price,omitempty" bson:"price,omitempty"`
	MainImage             string                             `json:"mainImage,omitempty" bson:"mainImage,omitempty"`
	GalleryImages         string                             `json:"galleryImages,omitempty" bson:"galleryImages,omitempty"`
	ThreeSixtyViewURL     string                             `json:"threeSixtyViewUrl,omitempty" bson:"threeSixtyViewUrl,omitempty"`
	Description           string                             `json:"description,omitempty" bson:"description,omitempty"`
	EngineType            string                             `json:"engineType,omitempty" bson:"engineType,omitempty"`
	Horsepower            int                                `json:"horsepower,omitempty" bson:"horsepower,omitempty"`
	TopSpeed              int                                `json:"topSpeed,omitempty" bson:"topSpeed,omitempty"`
	Availability          bool                               `json:"availability" bson:"availability"`
	Category              records.Ref[CarCategory]           `json:"category,omitempty" bson:"category,omitempty"`
	TestDriveBookings     records.Refs[TestDriveBooking]     `json:"testdrivebookings,omitempty" bson:"testdrivebookings,omitempty"`
	CustomizationRequests records.Refs[CustomizationRequest] `json:"customizationrequests,omitempty" bson:"customizationrequests,omitempty"`
}

// DisplayName is the "make model" label used on bookings and headings.
func (c *PremiumCar) DisplayName() string {
	return strings.TrimSpace(c.Make + " " + c.Model)
}

// Gallery lists the car's images in display order, skipping empty slots.
func (c *PremiumCar) Gallery() []string {
	images := make([]string, 0, 2)
	for _, image := range []string{c.MainImage, c.GalleryImages} {
		if image != "" {
			images = append(images, image)
		}
	}
	return images
}

// InCategory reports whether the car's category was expanded and is categoryID.
func (c *PremiumCar) InCategory(categoryID string) bool {
	return c.Category.Expanded() && c.Category.ID == categoryID
}
