package models

import "vyronex/pkg/records"

type TestDriveBooking struct {
	Record `bson:",inline"`

	CustomerName  string                   `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerEmail string                   `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	CustomerPhone string                   `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	CarModel      string                   `json:"carModel,omitempty" bson:"carModel,omitempty"`
	PreferredDate string                   `json:"preferredDate,omitempty" bson:"preferredDate,omitempty"`
	PreferredTime string                   `json:"preferredTime,omitempty" bson:"preferredTime,omitempty"`
	BookingStatus string                   `json:"bookingStatus,omitempty" bson:"bookingStatus,omitempty"`
	PremiumCars   records.Refs[PremiumCar] `json:"premiumcars,omitempty" bson:"premiumcars,omitempty"`
}

// TestDriveForm is what a visitor submits from a car's detail page.
type TestDriveForm struct {
	CustomerName  string `json:"customerName" form:"customerName" validate:"required,max=120"`
	CustomerEmail string `json:"customerEmail" form:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" form:"customerPhone" validate:"required,max=40"`
	PreferredDate string `json:"preferredDate" form:"preferredDate" validate:"required,calendar_date"`
	PreferredTime string `json:"preferredTime" form:"preferredTime" validate:"required,clock_time"`
}
