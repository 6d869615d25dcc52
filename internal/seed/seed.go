// Package seed loads catalog records (categories, cars and customization
// options) from YAML into a records store.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"vyronex/internal/models"
	"vyronex/pkg/logger"
	"vyronex/pkg/records"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

type Category struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"categoryName"`
	Description string `yaml:"categoryDescription"`
	Image       string `yaml:"categoryImage"`
	Slug        string `yaml:"slug"`
	IsActive    bool   `yaml:"isActive"`
}

type Car struct {
	ID                string  `yaml:"id"`
	Category          string  `yaml:"category"`
	Make              string  `yaml:"make"`
	Model             string  `yaml:"model"`
	Year              int     `yaml:"year"`
	Price             float64 `yaml:"price"`
	MainImage         string  `yaml:"mainImage"`
	GalleryImages     string  `yaml:"galleryImages"`
	ThreeSixtyViewURL string  `yaml:"threeSixtyViewUrl"`
	Description       string  `yaml:"description"`
	EngineType        string  `yaml:"engineType"`
	Horsepower        int     `yaml:"horsepower"`
	TopSpeed          int     `yaml:"topSpeed"`
	Availability      bool    `yaml:"availability"`
}

type Option struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"optionName"`
	Type            string `yaml:"optionType"`
	Description     string `yaml:"description"`
	PreviewImage    string `yaml:"previewImage"`
	PriceAdjustment string `yaml:"priceAdjustment"`
	ColorHexCode    string `yaml:"colorHexCode"`
	MaterialFinish  string `yaml:"materialFinish"`
}

type Data struct {
	Categories []Category `yaml:"categories"`
	Cars       []Car      `yaml:"cars"`
	Options    []Option   `yaml:"options"`
}

// Result counts what Apply created and what was already present.
type Result struct {
	Created int
	Skipped int
}

func Parse(data []byte) (*Data, error) {
	var seed Data
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Default is the catalog shipped with the binary.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// LoadFile reads a seed file, or the default seed when path is empty.
func LoadFile(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func (d *Data) validate() error {
	categories := make(map[string]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.ID == "" || c.Slug == "" {
			return fmt.Errorf("seed category %q needs an id and a slug", c.Name)
		}
		categories[c.ID] = true
	}
	for _, car := range d.Cars {
		if car.ID == "" {
			return fmt.Errorf("seed car %s %s has no id", car.Make, car.Model)
		}
		if car.Category != "" && !categories[car.Category] {
			return fmt.Errorf("seed car %s references unknown category %s", car.ID, car.Category)
		}
	}
	for _, o := range d.Options {
		if o.ID == "" {
			return fmt.Errorf("seed option %q has no id", o.Name)
		}
	}
	return nil
}

// Apply creates every seed record. Records whose id already exists are
// skipped, so seeding twice is harmless.
func Apply(ctx context.Context, client *records.Client, data *Data, log *logger.Logger) (*Result, error) {
	result := &Result{}

	track := func(kind, id string, err error) error {
		switch {
		case err == nil:
			result.Created++
			return nil
		case errors.Is(err, records.ErrDuplicateID):
			result.Skipped++
			log.WithFields(map[string]interface{}{"kind": kind, "id": id}).Debug("Seed record already present")
			return nil
		default:
			return fmt.Errorf("failed to seed %s %s: %w", kind, id, err)
		}
	}

	for _, c := range data.Categories {
		category := &models.CarCategory{
			Record:              models.Record{ID: c.ID},
			CategoryName:        c.Name,
			CategoryDescription: c.Description,
			CategoryImage:       c.Image,
			Slug:                c.Slug,
			IsActive:            c.IsActive,
		}
		_, err := records.Create(ctx, client, models.CollectionCarCategories, category, nil)
		if err := track("category", c.ID, err); err != nil {
			return result, err
		}
	}

	for _, c := range data.Cars {
		car := &models.PremiumCar{
			Record:            models.Record{ID: c.ID},
			Make:              c.Make,
			Model:             c.Model,
			Year:              c.Year,
			Price:             c.Price,
			MainImage:         c.MainImage,
			GalleryImages:     c.GalleryImages,
			ThreeSixtyViewURL: c.ThreeSixtyViewURL,
			Description:       c.Description,
			EngineType:        c.EngineType,
			Horsepower:        c.Horsepower,
			TopSpeed:          c.TopSpeed,
			Availability:      c.Availability,
		}
		var refs records.References
		if c.Category != "" {
			refs = records.References{models.RefCategory: {c.Category}}
		}
		_, err := records.Create(ctx, client, models.CollectionPremiumCars, car, refs)
		if err := track("car", c.ID, err); err != nil {
			return result, err
		}
	}

	for _, o := range data.Options {
		option := &models.CustomizationOption{
			Record:          models.Record{ID: o.ID},
			OptionName:      o.Name,
			OptionType:      o.Type,
			Description:     o.Description,
			PreviewImage:    o.PreviewImage,
			PriceAdjustment: o.PriceAdjustment,
			ColorHexCode:    o.ColorHexCode,
			MaterialFinish:  o.MaterialFinish,
		}
		_, err := records.Create(ctx, client, models.CollectionCustomizationOptions, option, nil)
		if err := track("option", o.ID, err); err != nil {
			return result, err
		}
	}

	log.WithFields(map[string]interface{}{
		"created": result.Created,
		"skipped": result.Skipped,
	}).Info("Seed data applied")

	return result, nil
}
