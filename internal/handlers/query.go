package handlers

import (
	"strconv"
	"strings"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

// Query parameter names. The Korean names are the upstream's own and are
// accepted alongside the English aliases.
const (
	paramStartIdx      = "startIdx"
	paramEndIdx        = "endIdx"
	paramDong          = "dong"
	paramCategory      = "업태구분명"
	paramCategoryAlias = "category"
	paramCity          = "sigunNm"
	paramCityAlias     = "city"
	paramSource        = "source"
)

// parsePageRequest builds a PageRequest from query parameters, filling in the
// configured default bounds. Range rules are checked later by the service.
func parsePageRequest(query func(string) string, listing config.ListingConfig) (models.PageRequest, error) {
	start, err := intParam(query, paramStartIdx, listing.DefaultStartIdx)
	if err != nil {
		return models.PageRequest{}, err
	}
	end, err := intParam(query, paramEndIdx, listing.DefaultEndIdx)
	if err != nil {
		return models.PageRequest{}, err
	}

	return models.PageRequest{
		StartIndex: start,
		EndIndex:   end,
		District:   query(paramDong),
		Category:   firstNonEmpty(query(paramCategory), query(paramCategoryAlias)),
		City:       firstNonEmpty(query(paramCity), query(paramCityAlias)),
		Source:     query(paramSource),
	}, nil
}

func intParam(query func(string) string, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(query(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError(name, name+"는 정수여야 합니다: "+raw)
	}
	return value, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
