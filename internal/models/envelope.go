package models

import "time"

// TimestampFormat is the ISO-8601 layout used in every envelope
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampFormat
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// RequestInfo echoes the page bounds and filters the response was built for
type RequestInfo struct {
	StartIdx  int    `json:"startIdx"`
	EndIdx    int    `json:"endIdx"`
	Dong      string `json:"dong,omitempty"`
	Category  string `json:"category,omitempty"`
	City      string `json:"city,omitempty"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// RestaurantListResponse is the success envelope of the restaurant listing.
// TotalCount is the upstream dataset size, not len(Data).
type RestaurantListResponse struct {
	Success     bool              `json:"success"`
	Data        []CanonicalRecord `json:"data"`
	TotalCount  int               `json:"totalCount"`
	Result      *ResultStatus     `json:"result,omitempty"`
	RequestInfo RequestInfo       `json:"requestInfo"`
}

// DistrictListResponse is the success envelope of the dong catalogue
type DistrictListResponse struct {
	Success       bool     `json:"success"`
	Districts     []string `json:"districts"`
	TotalCount    int      `json:"totalCount"`
	ExtractedFrom int      `json:"extractedFrom"`
	Timestamp     string   `json:"timestamp"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Mode      string            `json:"mode"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse is the failure envelope shared by every endpoint
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(label, detail string, at time.Time) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     label,
		Detail:    detail,
		Timestamp: FormatTimestamp(at),
	}
}
