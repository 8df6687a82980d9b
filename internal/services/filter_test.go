package services

import (
	"testing"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

func TestIsOpenStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "영업/정상", want: true},
		{status: "영업", want: true},
		{status: "정상", want: true},
		{status: "정상영업", want: true},
		{status: "운영중", want: true},
		{status: "폐업", want: false},
		{status: "휴업", want: false},
		{status: "취소/말소/만료/정지/중지", want: false},
		{status: "운영중단", want: false},
		{status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsOpenStatus(tt.status); got != tt.want {
				t.Errorf("IsOpenStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestFilterRecords(t *testing.T) {
	jongno := models.CanonicalRecord{ID: "1", StatusName: "영업", BusinessType: "한식", LotAddress: "서울특별시 종로구 종로1가 1"}
	gongpyeong := models.CanonicalRecord{ID: "2", StatusName: "영업", BusinessType: "중국식", LotAddress: "서울특별시 종로구 공평동 2"}
	roadOnly := models.CanonicalRecord{ID: "3", StatusName: "영업/정상", RoadAddress: "서울특별시 종로구 종로1가 3"}
	closed := models.CanonicalRecord{ID: "4", StatusName: "폐업", LotAddress: "서울특별시 종로구 종로1가 4"}
	exactOnly := models.CanonicalRecord{ID: "5", StatusName: "영업/정상"}
	noStatus := models.CanonicalRecord{ID: "6", LotAddress: "서울특별시 종로구 종로1가 6"}

	records := []models.CanonicalRecord{jongno, gongpyeong, roadOnly, closed, exactOnly, noStatus}

	tests := []struct {
		name     string
		district string
		category string
		city     string
		mode     string
		wantIDs  []string
	}{
		{name: "no district", mode: config.DistrictMatchLot, wantIDs: []string{"1", "2", "3", "5"}},
		{name: "lot only", district: "종로1가", mode: config.DistrictMatchLot, wantIDs: []string{"1"}},
		{name: "lot or road", district: "종로1가", mode: config.DistrictMatchLotOrRoad, wantIDs: []string{"1", "3"}},
		{name: "no match", district: "삼청동", mode: config.DistrictMatchLot, wantIDs: []string{}},
		{name: "category", category: "중국식", mode: config.DistrictMatchLot, wantIDs: []string{"2"}},
		{name: "category and district", district: "종로1가", category: "중국식", mode: config.DistrictMatchLot, wantIDs: []string{}},
		{name: "city on either address", city: "서울특별시", mode: config.DistrictMatchLot, wantIDs: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRecords(records, models.PageRequest{StartIndex: 1, EndIndex: 6, District: tt.district, Category: tt.category, City: tt.city}, tt.mode)
			if got == nil {
				t.Fatal("FilterRecords must not return nil")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Expected %v, got %+v", tt.wantIDs, got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestNormalizeFilters(t *testing.T) {
	// "종로" written with conjoining jamo (NFD)
	decomposed := "\u110c\u1169\u11bc\u1105\u1169"

	page := normalizeFilters(models.PageRequest{District: "  " + decomposed + " ", Source: " seoul "})

	if page.District != "종로" {
		t.Errorf("Expected NFC 종로, got %q", page.District)
	}
	if page.Source != "seoul" {
		t.Errorf("Expected trimmed source, got %q", page.Source)
	}
}
