package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vyronex/internal/models"
	"vyronex/internal/utils"
	"vyronex/pkg/records"

	"golang.org/x/sync/errgroup"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCarNotFound      = errors.New("car not found")
)

type PriceFilter string

const (
	PriceAll  PriceFilter = "all"
	PriceLow  PriceFilter = "low"
	PriceHigh PriceFilter = "high"
)

// ParsePriceFilter maps a query value to a filter; anything unknown is PriceAll.
func ParsePriceFilter(value string) PriceFilter {
	switch PriceFilter(strings.ToLower(strings.TrimSpace(value))) {
	case PriceLow:
		return PriceLow
	case PriceHigh:
		return PriceHigh
	default:
		return PriceAll
	}
}

// Matches treats a missing price as zero.
func (f PriceFilter) Matches(car *models.PremiumCar) bool {
	switch f {
	case PriceLow:
		return car.Price < utils.PriceThreshold
	case PriceHigh:
		return car.Price >= utils.PriceThreshold
	default:
		return true
	}
}

type CategoryListing struct {
	Category *models.CarCategory `json:"category"`
	Cars     []models.PremiumCar `json:"cars"`
	Filter   PriceFilter         `json:"filter"`
}

// AvailableLabel reads "1 vehicle available" or "N vehicles available".
func (l *CategoryListing) AvailableLabel() string {
	if len(l.Cars) == 1 {
		return "1 vehicle available"
	}
	return fmt.Sprintf("%d vehicles available", len(l.Cars))
}

type CatalogService interface {
	ActiveCategories(ctx context.Context) ([]models.CarCategory, error)
	CategoryListing(ctx context.Context, slug string, filter PriceFilter) (*CategoryListing, error)
	GetCar(ctx context.Context, id string) (*models.PremiumCar, error)
}

type catalogService struct {
	client *records.Client
}

func NewCatalogService(client *records.Client) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) ActiveCategories(ctx context.Context) ([]models.CarCategory, error) {
	all, err := records.GetAll[models.CarCategory](ctx, s.client, models.CollectionCarCategories)
	if err != nil {
		return nil, err
	}

	active := make([]models.CarCategory, 0, len(all.Items))
	for _, category := range all.Items {
		if category.IsActive {
			active = append(active, category)
		}
	}
	return active, nil
}

// CategoryListing loads categories and cars concurrently, then keeps the
// available cars of the category whose slug matches.
func (s *catalogService) CategoryListing(ctx context.Context, slug string, filter PriceFilter) (*CategoryListing, error) {
	var (
		categories *records.Items[models.CarCategory]
		cars       *records.Items[models.PremiumCar]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = records.GetAll[models.CarCategory](gctx, s.client, models.CollectionCarCategories)
		return err
	})
	g.Go(func() error {
		var err error
		cars, err = records.GetAll[models.PremiumCar](gctx, s.client, models.CollectionPremiumCars, models.RefCategory)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var category *models.CarCategory
	for i := range categories.Items {
		if categories.Items[i].Slug == slug {
			category = &categories.Items[i]
			break
		}
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, slug)
	}

	listing := &CategoryListing{
		Category: category,
		Cars:     make([]models.PremiumCar, 0),
		Filter:   filter,
	}
	for i := range cars.Items {
		car := &cars.Items[i]
		if car.Availability && car.InCategory(category.ID) && filter.Matches(car) {
			listing.Cars = append(listing.Cars, *car)
		}
	}

	return listing, nil
}

func (s *catalogService) GetCar(ctx context.Context, id string) (*models.PremiumCar, error) {
	car, err := records.GetByID[models.PremiumCar](ctx, s.client, models.CollectionPremiumCars, id, models.RefCategory)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) || errors.Is(err, records.ErrMissingID) {
			return nil, fmt.Errorf("%w: %s", ErrCarNotFound, id)
		}
		return nil, err
	}
	return car, nil
}
