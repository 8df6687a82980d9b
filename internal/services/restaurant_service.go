package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/adapters/opendata"
	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

// restaurantService implements RestaurantService
type restaurantService struct {
	fetcher PageFetcher
	sources SourceRegistry
	listing config.ListingConfig
	timeout time.Duration
	now     func() time.Time
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(fetcher PageFetcher, sources SourceRegistry, listing config.ListingConfig, timeout time.Duration, now func() time.Time) RestaurantService {
	if now == nil {
		now = time.Now
	}
	return &restaurantService{
		fetcher: fetcher,
		sources: sources,
		listing: listing,
		timeout: timeout,
		now:     now,
	}
}

// ListRestaurants runs fetch, parse, normalize and filter for one page
func (s *restaurantService) ListRestaurants(ctx context.Context, page models.PageRequest) (*models.RestaurantListResponse, error) {
	page = normalizeFilters(page)

	// Rejected pages never reach the upstream
	if err := page.Validate(s.listing.MaxPageSize); err != nil {
		return nil, err
	}

	src, err := s.sources.Get(page.Source)
	if err != nil {
		if errors.Is(err, opendata.ErrUnknownSource) {
			return nil, models.NewValidationError("source", fmt.Sprintf("지원하지 않는 데이터 소스입니다: %s", page.Source))
		}
		return nil, err
	}

	resp, err := s.fetcher.FetchPage(ctx, src, page, s.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants: %w", err)
	}

	records := NormalizeRecords(resp.Records, src.Fields)
	filtered := FilterRecords(records, localFilters(page, src), s.listing.DistrictMatch)

	logrus.WithFields(logrus.Fields{
		"source":      src.Name,
		"start_idx":   page.StartIndex,
		"end_idx":     page.EndIndex,
		"dong":        page.District,
		"fetched":     len(records),
		"open":        len(filtered),
		"total_count": resp.TotalCount,
	}).Info("Restaurant page processed")

	response := &models.RestaurantListResponse{
		Success:    true,
		Data:       filtered,
		TotalCount: resp.TotalCount,
		RequestInfo: models.RequestInfo{
			StartIdx:  page.StartIndex,
			EndIdx:    page.EndIndex,
			Dong:      page.District,
			Category:  page.Category,
			City:      page.City,
			Source:    src.Name,
			Timestamp: models.FormatTimestamp(s.now()),
		},
	}
	if !resp.Result.IsZero() {
		result := resp.Result
		response.Result = &result
	}

	return response, nil
}

// localFilters drops the filters src already applied upstream so only the
// ones it cannot forward are matched locally.
func localFilters(page models.PageRequest, src *opendata.Source) models.PageRequest {
	if src.CategoryParam != "" {
		page.Category = ""
	}
	if src.CityParam != "" {
		page.City = ""
	}
	return page
}
