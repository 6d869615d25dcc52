package models

import (
	"time"

	"vyronex/pkg/records"
)

// OtherOptionType groups options that carry no type of their own.
const OtherOptionType = "Other"

type CustomizationOption struct {
	Record `bson:",inline"`

	OptionName            string                             `json:"optionName,omitempty" bson:"optionName,omitempty"`
	OptionType            string                             `json:"optionType,omitempty" bson:"optionType,omitempty"`
	Description           string                             `json:"description,omitempty" bson:"description,omitempty"`
	PreviewImage          string                             `json:"previewImage,omitempty" bson:"previewImage,omitempty"`
	PriceAdjustment       string                             `json:"priceAdjustment,omitempty" bson:"priceAdjustment,omitempty"`
	ColorHexCode          string                             `json:"colorHexCode,omitempty" bson:"colorHexCode,omitempty"`
	MaterialFinish        string                             `json:"materialFinish,omitempty" bson:"materialFinish,omitempty"`
	CustomizationRequests records.Refs[CustomizationRequest] `json:"customizationrequests,omitempty" bson:"customizationrequests,omitempty"`
}

type CustomizationRequest struct {
	Record `bson:",inline"`

	CustomerName            string                            `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerEmail           string                            `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	CustomerPhone           string                            `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	RequestTitle            string                            `json:"requestTitle,omitempty" bson:"requestTitle,omitempty"`
	CarModelPreference      string                            `json:"carModelPreference,omitempty" bson:"carModelPreference,omitempty"`
	DetailedDescription     string                            `json:"detailedDescription,omitempty" bson:"detailedDescription,omitempty"`
	ColorPreferences        string                            `json:"colorPreferences,omitempty" bson:"colorPreferences,omitempty"`
	DesignInspirationImages string                            `json:"designInspirationImages,omitempty" bson:"designInspirationImages,omitempty"`
	SubmissionDateTime      time.Time                         `json:"submissionDateTime,omitempty" bson:"submissionDateTime,omitempty"`
	RequestStatus           string                            `json:"requestStatus,omitempty" bson:"requestStatus,omitempty"`
	SelectedOptions         records.Refs[CustomizationOption] `json:"selectedoptions,omitempty" bson:"selectedoptions,omitempty"`
	PremiumCars             records.Refs[PremiumCar]          `json:"premiumcars,omitempty" bson:"premiumcars,omitempty"`
}

// CustomizationForm is the customization request a visitor submits.
type CustomizationForm struct {
	CustomerName        string   `json:"customerName" form:"customerName" validate:"required,max=120"`
	CustomerEmail       string   `json:"customerEmail" form:"customerEmail" validate:"required,email"`
	CustomerPhone       string   `json:"customerPhone" form:"customerPhone" validate:"required,max=40"`
	RequestTitle        string   `json:"requestTitle" form:"requestTitle" validate:"required,max=200"`
	CarModelPreference  string   `json:"carModelPreference" form:"carModelPreference" validate:"max=200"`
	DetailedDescription string   `json:"detailedDescription" form:"detailedDescription" validate:"required,max=5000"`
	ColorPreferences    string   `json:"colorPreferences" form:"colorPreferences" validate:"max=500"`
	SelectedOptions     []string `json:"selectedOptions" form:"selectedOptions" validate:"dive,required"`
}

// OptionGroup is one optionType bucket on the customization page.
type OptionGroup struct {
	Type    string                `json:"type"`
	Options []CustomizationOption `json:"options"`
}
