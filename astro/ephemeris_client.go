package astro

import (
	"fmt"
	"time"

	"github.com/sixdouglas/suncalc"

	"astrocal-server/astro/ephem"
	"astrocal-server/models"
)

// EphemerisClient is the production AstronomyAPI: sun times and moon
// illumination come from the suncalc library, per-body rise/set/
// transit from the internal ephemeris engine.
type EphemerisClient struct {
	lat   float64
	lon   float64
	elevM float64
	loc   *time.Location
}

// NewEphemerisClient creates an EphemerisClient for an observer at
// (lat, lon), elevM meters above sea level, whose local civil time is
// loc. Elevation shifts sunrise earlier and sunset later; at a
// mountain site the difference is several minutes.
func NewEphemerisClient(lat, lon, elevM float64, loc *time.Location) *EphemerisClient {
	return &EphemerisClient{lat: lat, lon: lon, elevM: elevM, loc: loc}
}

// GetSunTimes returns sunrise, sunset and solar noon for the date.
func (c *EphemerisClient) GetSunTimes(date models.SelectedDate) (*models.SunEvents, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("invalid date: %s", date.ISO())
	}

	// Query at local noon so the library resolves the right civil day.
	observer := suncalc.Observer{
		Latitude:  c.lat,
		Longitude: c.lon,
		Height:    c.elevM,
		Location:  c.loc,
	}
	times := suncalc.GetTimesWithObserver(date.Time(12, c.loc), observer)

	sunrise := times[suncalc.Sunrise].Value
	sunset := times[suncalc.Sunset].Value
	noon := times[suncalc.SolarNoon].Value

	if sunrise.IsZero() || sunset.IsZero() {
		return nil, fmt.Errorf("no sunrise/sunset for %s", date.ISO())
	}

	return &models.SunEvents{
		Sunrise:   sunrise,
		Sunset:    sunset,
		SolarNoon: noon,
	}, nil
}

// GetBodyEvents returns rise/set/transit instants for the body on the
// date's local calendar day. Missing events are flagged, not errors.
func (c *EphemerisClient) GetBodyEvents(date models.SelectedDate, body Body) (*models.BodyEventTimes, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("invalid date: %s", date.ISO())
	}
	localMidnight := date.Time(0, c.loc)

	var ev ephem.DayEvents
	switch body {
	case BodyMoon:
		ev = ephem.MoonEventsForDate(c.lat, c.lon, c.elevM, localMidnight)
	case BodyMercury:
		ev = ephem.PlanetEventsForDate(ephem.Mercury, c.lat, c.lon, c.elevM, localMidnight)
	case BodyVenus:
		ev = ephem.PlanetEventsForDate(ephem.Venus, c.lat, c.lon, c.elevM, localMidnight)
	case BodyMars:
		ev = ephem.PlanetEventsForDate(ephem.Mars, c.lat, c.lon, c.elevM, localMidnight)
	case BodyJupiter:
		ev = ephem.PlanetEventsForDate(ephem.Jupiter, c.lat, c.lon, c.elevM, localMidnight)
	case BodySaturn:
		ev = ephem.PlanetEventsForDate(ephem.Saturn, c.lat, c.lon, c.elevM, localMidnight)
	default:
		return nil, fmt.Errorf("unknown body: %s", body)
	}

	return &models.BodyEventTimes{
		Rise:       ev.Rise,
		Set:        ev.Set,
		Transit:    ev.Transit,
		HasRise:    ev.HasRise,
		HasSet:     ev.HasSet,
		HasTransit: ev.HasTransit,
	}, nil
}

// GetMoonIllumination returns the lit percentage of the Moon's disk at
// local noon of the date plus whether it is waxing. suncalc's phase
// fraction runs 0 (new) through 0.5 (full) to 1; below 0.5 the disk is
// filling.
func (c *EphemerisClient) GetMoonIllumination(date models.SelectedDate) (*models.MoonIllumination, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("invalid date: %s", date.ISO())
	}

	ill := suncalc.GetMoonIllumination(date.Time(12, c.loc))

	return &models.MoonIllumination{
		Percent: ill.Fraction * 100,
		Waxing:  ill.Phase < 0.5,
	}, nil
}
