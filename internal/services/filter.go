package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

var (
	// openSubstringTokens match anywhere in the status name
	openSubstringTokens = []string{"영업", "정상"}
	// openExactTokens match the whole status name
	openExactTokens = []string{"운영중", "영업/정상"}
)

// IsOpenStatus reports whether status marks a business as currently trading
func IsOpenStatus(status string) bool {
	if status == "" {
		return false
	}
	for _, token := range openSubstringTokens {
		if strings.Contains(status, token) {
			return true
		}
	}
	for _, token := range openExactTokens {
		if status == token {
			return true
		}
	}
	return false
}

// MatchesDistrict reports whether the record's address contains district.
// In DistrictMatchLot mode only the lot address is checked.
func MatchesDistrict(record models.CanonicalRecord, district, mode string) bool {
	if district == "" {
		return true
	}
	if strings.Contains(record.LotAddress, district) {
		return true
	}
	return mode == config.DistrictMatchLotOrRoad && strings.Contains(record.RoadAddress, district)
}

// MatchesCategory reports whether the record's business type contains category
func MatchesCategory(record models.CanonicalRecord, category string) bool {
	return category == "" || strings.Contains(record.BusinessType, category)
}

// MatchesCity reports whether either address contains city
func MatchesCity(record models.CanonicalRecord, city string) bool {
	if city == "" {
		return true
	}
	return strings.Contains(record.LotAddress, city) || strings.Contains(record.RoadAddress, city)
}

// FilterRecords keeps open records matching the page's district, category
// and city filters, in their original order. The result is never nil.
func FilterRecords(records []models.CanonicalRecord, page models.PageRequest, mode string) []models.CanonicalRecord {
	filtered := make([]models.CanonicalRecord, 0, len(records))
	for _, record := range records {
		if !IsOpenStatus(record.StatusName) {
			continue
		}
		if !MatchesDistrict(record, page.District, mode) {
			continue
		}
		if !MatchesCategory(record, page.Category) || !MatchesCity(record, page.City) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// normalizeFilters trims free-form filters and converts them to NFC, the form
// the upstream uses for Hangul.
func normalizeFilters(page models.PageRequest) models.PageRequest {
	page.District = norm.NFC.String(strings.TrimSpace(page.District))
	page.Category = norm.NFC.String(strings.TrimSpace(page.Category))
	page.City = norm.NFC.String(strings.TrimSpace(page.City))
	page.Source = strings.TrimSpace(page.Source)
	return page
}
