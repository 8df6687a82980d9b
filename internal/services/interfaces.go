package services

import (
	"context"
	"time"

	"restaurant-finder-api/internal/adapters/opendata"
	"restaurant-finder-api/internal/models"
)

// RestaurantService defines the restaurant listing operation
type RestaurantService interface {
	// ListRestaurants validates page, fetches it from the upstream source and
	// returns the open records, optionally narrowed to a district.
	ListRestaurants(ctx context.Context, page models.PageRequest) (*models.RestaurantListResponse, error)
}

// DistrictService defines the dong catalogue operation
type DistrictService interface {
	ListDistricts(ctx context.Context) (*models.DistrictListResponse, error)
}

// PageFetcher fetches and parses one page from an upstream source
type PageFetcher interface {
	FetchPage(ctx context.Context, src *opendata.Source, page models.PageRequest, timeout time.Duration) (*opendata.Response, error)
}

// SourceRegistry resolves upstream sources by name
type SourceRegistry interface {
	Get(name string) (*opendata.Source, error)
}
