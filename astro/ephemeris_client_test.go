package astro

import (
	"testing"
	"time"

	"astrocal-server/models"
)

var testLoc = time.FixedZone("IST", 5*3600+30*60)

const (
	testLat  = 10.2306
	testLon  = 77.4686
	testElev = 2133.0
)

func TestGetSunTimes_Ordering(t *testing.T) {
	client := NewEphemerisClient(testLat, testLon, testElev, testLoc)

	sun, err := client.GetSunTimes(models.SelectedDate{Year: 2024, Month: 3, Day: 15})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !sun.Sunrise.Before(sun.SolarNoon) || !sun.SolarNoon.Before(sun.Sunset) {
		t.Errorf("Expected sunrise < noon < sunset, got %v / %v / %v",
			sun.Sunrise, sun.SolarNoon, sun.Sunset)
	}

	// Near the equator sunrise stays close to 06:00 local year round.
	h := sun.Sunrise.In(testLoc).Hour()
	if h < 5 || h > 7 {
		t.Errorf("Expected an early-morning sunrise in IST, got %v", sun.Sunrise.In(testLoc))
	}
}

func TestGetSunTimes_ElevationShiftsHorizon(t *testing.T) {
	// From 2133 m the horizon sits lower, so the sun rises minutes
	// earlier and sets minutes later than at sea level.
	date := models.SelectedDate{Year: 2024, Month: 3, Day: 15}

	atSea, err := NewEphemerisClient(testLat, testLon, 0, testLoc).GetSunTimes(date)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	onPeak, err := NewEphemerisClient(testLat, testLon, testElev, testLoc).GetSunTimes(date)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !onPeak.Sunrise.Before(atSea.Sunrise) {
		t.Errorf("Expected elevated sunrise %v before sea-level sunrise %v",
			onPeak.Sunrise, atSea.Sunrise)
	}
	if !onPeak.Sunset.After(atSea.Sunset) {
		t.Errorf("Expected elevated sunset %v after sea-level sunset %v",
			onPeak.Sunset, atSea.Sunset)
	}
}

func TestGetSunTimes_InvalidDate(t *testing.T) {
	client := NewEphemerisClient(testLat, testLon, testElev, testLoc)
	if _, err := client.GetSunTimes(models.SelectedDate{Year: 2024, Month: 2, Day: 30}); err == nil {
		t.Error("Expected error for Feb 30")
	}
}

func TestGetBodyEvents_AllBodies(t *testing.T) {
	client := NewEphemerisClient(testLat, testLon, testElev, testLoc)
	date := models.SelectedDate{Year: 2024, Month: 3, Day: 15}

	for _, body := range append([]Body{BodyMoon}, Planets...) {
		ev, err := client.GetBodyEvents(date, body)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", body, err)
		}
		// At 10 degrees north every body culminates above the horizon.
		if !ev.HasTransit {
			t.Errorf("%s: expected a transit", body)
		}
	}
}

func TestGetBodyEvents_UnknownBody(t *testing.T) {
	client := NewEphemerisClient(testLat, testLon, testElev, testLoc)
	if _, err := client.GetBodyEvents(models.SelectedDate{Year: 2024, Month: 3, Day: 15}, Body("Pluto")); err == nil {
		t.Error("Expected error for unknown body")
	}
}

func TestGetMoonIllumination_Range(t *testing.T) {
	client := NewEphemerisClient(testLat, testLon, testElev, testLoc)

	ill, err := client.GetMoonIllumination(models.SelectedDate{Year: 2024, Month: 3, Day: 15})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ill.Percent < 0 || ill.Percent > 100 {
		t.Errorf("Illumination out of range: %f", ill.Percent)
	}
}
