package opendata

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

// Format is the wire format an upstream endpoint answers with
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// Source names
const (
	SourceSeoul      = "seoul"
	SourceFoodSafety = "foodsafety"
)

// FieldTable maps canonical field names to source field codes
type FieldTable map[string]string

// Source describes one upstream endpoint variant: where it lives, how it
// answers and how its rows map to canonical records.
type Source struct {
	Name             string
	Format           Format
	Service          string // root key wrapping the rows
	BaseURL          string
	PathTemplate     string
	CountKey         string
	ResultKey        string
	ResultCodeKey    string
	ResultMessageKey string
	// CityParam and CategoryParam name the query parameters the optional
	// filters are forwarded as. Empty means the source does not accept them.
	CityParam     string
	CategoryParam string
	Fields        FieldTable
}

// URL builds the request URL for page, embedding apiKey in the path
func (s *Source) URL(apiKey string, page models.PageRequest) string {
	path := strings.NewReplacer(
		"{key}", url.PathEscape(apiKey),
		"{format}", string(s.Format),
		"{service}", s.Service,
		"{start}", strconv.Itoa(page.StartIndex),
		"{end}", strconv.Itoa(page.EndIndex),
	).Replace(s.PathTemplate)

	target := s.BaseURL + path

	params := url.Values{}
	if s.CityParam != "" && page.City != "" {
		params.Set(s.CityParam, page.City)
	}
	if s.CategoryParam != "" && page.Category != "" {
		params.Set(s.CategoryParam, page.Category)
	}
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	return target
}

// Redacted returns the request URL with the API key masked, for logging
func (s *Source) Redacted(apiKey string, page models.PageRequest) string {
	full := s.URL(apiKey, page)
	if apiKey == "" {
		return full
	}
	return strings.Replace(full, url.PathEscape(apiKey), "****", 1)
}

var seoulFields = FieldTable{
	models.FieldID:             "MGTNO",
	models.FieldBusinessName:   "BPLCNM",
	models.FieldBusinessType:   "UPTAENM",
	models.FieldLotAddress:     "SITEWHLADDR",
	models.FieldRoadAddress:    "RDNWHLADDR",
	models.FieldPhone:          "SITETEL",
	models.FieldStatusName:     "TRDSTATENM",
	models.FieldClosureDate:    "DCBYMD",
	models.FieldPermitDate:     "APVPERMYMD",
	models.FieldX:              "X",
	models.FieldY:              "Y",
	models.FieldFacilityScale:  "FACILTOTSCP",
	models.FieldLotPostalCode:  "SITEPOSTNO",
	models.FieldRoadPostalCode: "RDNPOSTNO",
}

var foodSafetyFields = FieldTable{
	models.FieldID:             "LCNS_NO",
	models.FieldBusinessName:   "BSSH_NM",
	models.FieldBusinessType:   "INDUTY_CD_NM",
	models.FieldLotAddress:     "SITE_ADDR",
	models.FieldRoadAddress:    "ADDR",
	models.FieldPhone:          "TELNO",
	models.FieldStatusName:     "BSN_STATE_NM",
	models.FieldClosureDate:    "CLSBIZ_DT",
	models.FieldPermitDate:     "PRMS_DT",
	models.FieldX:              "X_CRDNT",
	models.FieldY:              "Y_CRDNT",
	models.FieldFacilityScale:  "FCLTY_SCALE",
	models.FieldLotPostalCode:  "SITE_ZIP",
	models.FieldRoadPostalCode: "ROAD_ZIP",
}

// Registry holds the configured upstream sources
type Registry struct {
	sources     map[string]*Source
	defaultName string
}

// NewRegistry creates the source registry from upstream configuration
func NewRegistry(cfg config.UpstreamConfig) (*Registry, error) {
	r := &Registry{
		sources: map[string]*Source{
			SourceSeoul: {
				Name:             SourceSeoul,
				Format:           FormatXML,
				Service:          "LOCALDATA_072404_JN",
				BaseURL:          cfg.SeoulBaseURL,
				PathTemplate:     "/{key}/{format}/{service}/{start}/{end}/",
				CountKey:         "list_total_count",
				ResultKey:        "RESULT",
				ResultCodeKey:    "CODE",
				ResultMessageKey: "MESSAGE",
				Fields:           seoulFields,
			},
			SourceFoodSafety: {
				Name:             SourceFoodSafety,
				Format:           FormatJSON,
				Service:          "COOKRST",
				BaseURL:          cfg.FoodSafetyBaseURL,
				PathTemplate:     "/{key}/{service}/{format}/{start}/{end}",
				CountKey:         "total_count",
				ResultKey:        "RESULT",
				ResultCodeKey:    "CODE",
				ResultMessageKey: "MSG",
				CityParam:        "sigunNm",
				CategoryParam:    "업태구분명",
				Fields:           foodSafetyFields,
			},
		},
		defaultName: cfg.Source,
	}

	if r.defaultName == "" {
		r.defaultName = SourceSeoul
	}
	if _, ok := r.sources[r.defaultName]; !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSource, r.defaultName, strings.Join(r.Names(), ", "))
	}

	return r, nil
}

// Get returns the named source, or the default source when name is empty
func (r *Registry) Get(name string) (*Source, error) {
	if name == "" {
		name = r.defaultName
	}
	src, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return src, nil
}

// Default returns the configured default source
func (r *Registry) Default() *Source {
	return r.sources[r.defaultName]
}

// Names returns the registered source names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
