package astro

import (
	"fmt"
	"time"

	"astrocal-server/models"
)

// EphemerisClientMock embeds canned ephemeris values for tests and
// local development without running the real computation.
type EphemerisClientMock struct {
	loc *time.Location
}

// NewEphemerisClientMock creates a new EphemerisClientMock reporting
// times in loc.
func NewEphemerisClientMock(loc *time.Location) *EphemerisClientMock {
	return &EphemerisClientMock{loc: loc}
}

func (c *EphemerisClientMock) at(date models.SelectedDate, hour, min int) time.Time {
	return time.Date(date.Year, time.Month(date.Month), date.Day, hour, min, 0, 0, c.loc)
}

// GetSunTimes returns fixed sun times on the requested date.
func (c *EphemerisClientMock) GetSunTimes(date models.SelectedDate) (*models.SunEvents, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("invalid date: %s", date.ISO())
	}
	return &models.SunEvents{
		Sunrise:   c.at(date, 6, 15),
		Sunset:    c.at(date, 18, 30),
		SolarNoon: c.at(date, 12, 22),
	}, nil
}

// GetBodyEvents returns fixed event times. The Moon is given no set
// event so callers exercise the "N/A" path.
func (c *EphemerisClientMock) GetBodyEvents(date models.SelectedDate, body Body) (*models.BodyEventTimes, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("invalid date: %s", date.ISO())
	}
	switch body {
	case BodyMoon:
		return &models.BodyEventTimes{
			Rise:       c.at(date, 20, 5),
			Transit:    c.at(date, 2, 40),
			HasRise:    true,
			HasSet:     false,
			HasTransit: true,
		}, nil
	case BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn:
		return &models.BodyEventTimes{
			Rise:       c.at(date, 5, 45),
			Set:        c.at(date, 17, 50),
			Transit:    c.at(date, 11, 48),
			HasRise:    true,
			HasSet:     true,
			HasTransit: true,
		}, nil
	default:
		return nil, fmt.Errorf("unknown body: %s", body)
	}
}

// GetMoonIllumination returns a fixed waxing gibbous moon.
func (c *EphemerisClientMock) GetMoonIllumination(date models.SelectedDate) (*models.MoonIllumination, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("invalid date: %s", date.ISO())
	}
	return &models.MoonIllumination{Percent: 72.5, Waxing: true}, nil
}
