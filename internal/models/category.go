package models

type CarCategory struct {
	Record `bson:",inline"`

	CategoryName        string `json:"categoryName,omitempty" bson:"categoryName,omitempty"`
	CategoryDescription string `json:"categoryDescription,omitempty" bson:"categoryDescription,omitempty"`
	CategoryImage       string `json:"categoryImage,omitempty" bson:"categoryImage,omitempty"`
	Slug                string `json:"slug,omitempty" bson:"slug,omitempty"`
	IsActive            bool   `json:"isActive" bson:"isActive"`
}
