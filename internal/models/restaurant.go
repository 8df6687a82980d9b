package models

import (
	"encoding/json"
	"strconv"
)

// Canonical field names, in the order they appear in CanonicalRecord.
const (
	FieldID             = "id"
	FieldBusinessName   = "businessName"
	FieldBusinessType   = "businessType"
	FieldLotAddress     = "lotAddress"
	FieldRoadAddress    = "roadAddress"
	FieldPhone          = "phone"
	FieldStatusName     = "statusName"
	FieldClosureDate    = "closureDate"
	FieldPermitDate     = "permitDate"
	FieldX              = "x"
	FieldY              = "y"
	FieldFacilityScale  = "facilityScale"
	FieldLotPostalCode  = "lotPostalCode"
	FieldRoadPostalCode = "roadPostalCode"
)

// CanonicalFields lists every canonical field name in output order
var CanonicalFields = []string{
	FieldID,
	FieldBusinessName,
	FieldBusinessType,
	FieldLotAddress,
	FieldRoadAddress,
	FieldPhone,
	FieldStatusName,
	FieldClosureDate,
	FieldPermitDate,
	FieldX,
	FieldY,
	FieldFacilityScale,
	FieldLotPostalCode,
	FieldRoadPostalCode,
}

// RawRecord is one upstream row keyed by source-specific field codes.
// XML rows hold single-element sequences, JSON rows hold scalars.
type RawRecord map[string]any

// String returns the scalar value stored under code, or "" when the field is
// absent, empty, or not a scalar.
func (r RawRecord) String(code string) string {
	if r == nil || code == "" {
		return ""
	}
	return scalarString(r[code])
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		return scalarString(FirstOrDefault(val, nil))
	case []string:
		return FirstOrDefault(val, "")
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// FirstOrDefault returns the first element of seq, or def when seq is empty
func FirstOrDefault[T any](seq []T, def T) T {
	if len(seq) == 0 {
		return def
	}
	return seq[0]
}

// CanonicalRecord is the client-facing shape of one business entry.
// Coordinates and postal codes stay strings to keep the upstream precision.
type CanonicalRecord struct {
	ID             string `json:"id"`
	BusinessName   string `json:"businessName"`
	BusinessType   string `json:"businessType"`
	LotAddress     string `json:"lotAddress"`
	RoadAddress    string `json:"roadAddress"`
	Phone          string `json:"phone"`
	StatusName     string `json:"statusName"`
	ClosureDate    string `json:"closureDate"`
	PermitDate     string `json:"permitDate"`
	X              string `json:"x"`
	Y              string `json:"y"`
	FacilityScale  string `json:"facilityScale"`
	LotPostalCode  string `json:"lotPostalCode"`
	RoadPostalCode string `json:"roadPostalCode"`
}

// ResultStatus is the upstream result code and message, when the source reports one
type ResultStatus struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IsZero reports whether the upstream sent no result status
func (r ResultStatus) IsZero() bool {
	return r.Code == "" && r.Message == ""
}
