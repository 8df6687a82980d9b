package services

import (
	"fmt"
	"time"

	"restaurant-finder-api/internal/config"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	RestaurantService RestaurantService
	DistrictService   DistrictService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Listing         config.ListingConfig
	Districts       config.DistrictConfig
	UpstreamTimeout time.Duration
	// Now overrides the clock used for envelope timestamps
	Now func() time.Time
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(fetcher PageFetcher, sources SourceRegistry, cfg *ServiceConfig) (*ServiceContainer, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("page fetcher cannot be nil")
	}
	if sources == nil {
		return nil, fmt.Errorf("source registry cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("service config cannot be nil")
	}

	return &ServiceContainer{
		RestaurantService: NewRestaurantService(fetcher, sources, cfg.Listing, cfg.UpstreamTimeout, cfg.Now),
		DistrictService:   NewDistrictService(fetcher, sources, cfg.Districts, cfg.Now),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.RestaurantService == nil {
		return fmt.Errorf("restaurant service is nil")
	}
	if sc.DistrictService == nil {
		return fmt.Errorf("district service is nil")
	}
	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	return nil
}
