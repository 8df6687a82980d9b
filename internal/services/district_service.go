package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/adapters/opendata"
	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

// districtService implements DistrictService
type districtService struct {
	fetcher PageFetcher
	sources SourceRegistry
	cfg     config.DistrictConfig
	pattern *regexp.Regexp
	now     func() time.Time
}

// NewDistrictService creates a new district service
func NewDistrictService(fetcher PageFetcher, sources SourceRegistry, cfg config.DistrictConfig, now func() time.Time) DistrictService {
	if now == nil {
		now = time.Now
	}
	return &districtService{
		fetcher: fetcher,
		sources: sources,
		cfg:     cfg,
		pattern: DistrictPattern(cfg.City, cfg.Gu),
		now:     now,
	}
}

// DistrictPattern matches "<city> <gu> <dong>" and captures the dong
func DistrictPattern(city, gu string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(city) + `\s+` + regexp.QuoteMeta(gu) + `\s+(\S+)`)
}

// ListDistricts samples the Seoul dataset and returns the dong names found in it
func (s *districtService) ListDistricts(ctx context.Context) (*models.DistrictListResponse, error) {
	src, err := s.sources.Get(opendata.SourceSeoul)
	if err != nil {
		return nil, err
	}

	page := models.PageRequest{StartIndex: 1, EndIndex: s.cfg.SampleSize}
	resp, err := s.fetcher.FetchPage(ctx, src, page, s.cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch district sample: %w", err)
	}

	districts := ExtractDistricts(NormalizeRecords(resp.Records, src.Fields), s.pattern)

	logrus.WithFields(logrus.Fields{
		"sampled":   len(resp.Records),
		"districts": len(districts),
	}).Info("District list extracted")

	return &models.DistrictListResponse{
		Success:       true,
		Districts:     districts,
		TotalCount:    len(districts),
		ExtractedFrom: len(resp.Records),
		Timestamp:     models.FormatTimestamp(s.now()),
	}, nil
}

// ExtractDistricts returns the sorted, de-duplicated dong names found in the
// records' addresses. The lot address is preferred; the road address is used
// when the lot address is empty.
func ExtractDistricts(records []models.CanonicalRecord, pattern *regexp.Regexp) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		address := record.LotAddress
		if address == "" {
			address = record.RoadAddress
		}

		match := pattern.FindStringSubmatch(address)
		if len(match) < 2 {
			continue
		}

		dong := match[1]
		if !strings.Contains(dong, "동") && !strings.Contains(dong, "가") {
			continue
		}
		if utf8.RuneCountInString(dong) <= 1 {
			continue
		}
		seen[dong] = struct{}{}
	}

	districts := make([]string, 0, len(seen))
	for dong := range seen {
		districts = append(districts, dong)
	}
	sort.Strings(districts)

	return districts
}
