package redis

import (
	"context"
	"testing"

	"astrocal-server/db"
	"astrocal-server/models"
)

func testAlmanac(date models.SelectedDate) *models.Almanac {
	return &models.Almanac{
		Header: "Astronomy Data for " + date.LongForm(),
		Date:   date,
		Sun: models.SunSection{
			Sunrise:   "06:15 AM",
			Sunset:    "06:30 PM",
			SolarNoon: "12:22 PM",
		},
		Moon: models.MoonSection{
			IlluminationPct: 72.5,
			PhaseName:       "Waxing Gibbous",
			Rise:            "08:05 PM",
			Set:             "N/A",
			Transit:         "02:40 AM",
		},
	}
}

func TestRedisAlmanacDAO_SetGet_Success(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisAlmanacDAO(mockClient)

	date := models.SelectedDate{Year: 2024, Month: 3, Day: 15}
	if err := dao.SetAlmanac(testAlmanac(date)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := dao.GetAlmanac(date)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected a cached almanac, got nil")
	}
	if got.Moon.PhaseName != "Waxing Gibbous" {
		t.Errorf("Expected phase to round-trip, got %q", got.Moon.PhaseName)
	}
	if got.Moon.Set != "N/A" {
		t.Errorf("Expected missing moonset to round-trip as N/A, got %q", got.Moon.Set)
	}
}

func TestRedisAlmanacDAO_Get_CacheMiss(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisAlmanacDAO(mockClient)

	got, err := dao.GetAlmanac(models.SelectedDate{Year: 2024, Month: 3, Day: 15})
	if err != nil {
		t.Fatalf("Expected no error on cache miss, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil on cache miss, got %v", got)
	}
}

func TestRedisAlmanacDAO_ListCachedDates(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisAlmanacDAO(mockClient)

	_ = dao.SetAlmanac(testAlmanac(models.SelectedDate{Year: 2024, Month: 3, Day: 15}))
	_ = dao.SetAlmanac(testAlmanac(models.SelectedDate{Year: 2024, Month: 3, Day: 16}))

	dates, err := dao.ListCachedDates()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(dates) != 2 {
		t.Errorf("Expected 2 cached dates, got %d", len(dates))
	}

	expected := map[string]bool{"2024-03-15": true, "2024-03-16": true}
	for _, d := range dates {
		if !expected[d] {
			t.Errorf("Unexpected cached date: %s", d)
		}
	}
}
