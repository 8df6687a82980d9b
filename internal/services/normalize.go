package services

import (
	"restaurant-finder-api/internal/adapters/opendata"
	"restaurant-finder-api/internal/models"
)

// NormalizeRecord maps one upstream row to a canonical record using fields.
// Every canonical field falls back to "", so a row with no recognised codes
// yields an all-empty record.
func NormalizeRecord(raw models.RawRecord, fields opendata.FieldTable) models.CanonicalRecord {
	get := func(name string) string {
		return raw.String(fields[name])
	}

	return models.CanonicalRecord{
		ID:             get(models.FieldID),
		BusinessName:   get(models.FieldBusinessName),
		BusinessType:   get(models.FieldBusinessType),
		LotAddress:     get(models.FieldLotAddress),
		RoadAddress:    get(models.FieldRoadAddress),
		Phone:          get(models.FieldPhone),
		StatusName:     get(models.FieldStatusName),
		ClosureDate:    get(models.FieldClosureDate),
		PermitDate:     get(models.FieldPermitDate),
		X:              get(models.FieldX),
		Y:              get(models.FieldY),
		FacilityScale:  get(models.FieldFacilityScale),
		LotPostalCode:  get(models.FieldLotPostalCode),
		RoadPostalCode: get(models.FieldRoadPostalCode),
	}
}

// NormalizeRecords maps every row, preserving upstream order
func NormalizeRecords(raws []models.RawRecord, fields opendata.FieldTable) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, NormalizeRecord(raw, fields))
	}
	return records
}
