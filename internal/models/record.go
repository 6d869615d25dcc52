package models

import (
	"time"

	"vyronex/pkg/records"
)

// Collection names in the content store.
const (
	CollectionCarCategories         = "carcategories"
	CollectionPremiumCars           = "premiumcars"
	CollectionTestDriveBookings     = "testdrivebookings"
	CollectionCustomizationOptions  = "customizationoptions"
	CollectionCustomizationRequests = "customizationrequests"
)

// Reference fields.
const (
	RefCategory              = "category"
	RefPremiumCars           = "premiumcars"
	RefTestDriveBookings     = "testdrivebookings"
	RefCustomizationRequests = "customizationrequests"
	RefSelectedOptions       = "selectedoptions"
)

// StatusPending is the status every booking and request is created with.
// Later transitions happen in the CMS, never here.
const StatusPending = "Pending"

// Record carries the fields the store assigns to every entity.
type Record struct {
	ID          string     `json:"_id" bson:"_id"`
	CreatedDate *time.Time `json:"_createdDate,omitempty" bson:"_createdDate,omitempty"`
	UpdatedDate *time.Time `json:"_updatedDate,omitempty" bson:"_updatedDate,omitempty"`
}

// Schema returns the reference layout of the dealership collections.
func Schema() *records.Schema {
	return records.NewSchema().
		Register(CollectionPremiumCars, RefCategory, CollectionCarCategories, records.SingleRef).
		Register(CollectionPremiumCars, RefTestDriveBookings, CollectionTestDriveBookings, records.MultiRef).
		Register(CollectionPremiumCars, RefCustomizationRequests, CollectionCustomizationRequests, records.MultiRef).
		Register(CollectionTestDriveBookings, RefPremiumCars, CollectionPremiumCars, records.MultiRef).
		Register(CollectionCustomizationOptions, RefCustomizationRequests, CollectionCustomizationRequests, records.MultiRef).
		Register(CollectionCustomizationRequests, RefSelectedOptions, CollectionCustomizationOptions, records.MultiRef).
		Register(CollectionCustomizationRequests, RefPremiumCars, CollectionPremiumCars, records.MultiRef)
}
