package ephem

import (
	"math"
	"time"
)

// Horizon altitude of a body's center at rise/set under standard
// refraction. -0.833 is the usual Sun/star convention; the Moon's
// upper-limb + parallax convention sits a bit higher.
const (
	planetHorizonAltDeg = -0.5667
	moonHorizonAltDeg   = 0.125
)

const (
	searchSteps = 48 // samples across the day (every 30 minutes)
	searchTol   = 30 * time.Second
)

// DayEvents holds a body's events for one local calendar day, UTC.
// Any of the three may be absent when the crossing or culmination does
// not occur within that day.
type DayEvents struct {
	Rise       time.Time
	Set        time.Time
	Transit    time.Time
	HasRise    bool
	HasSet     bool
	HasTransit bool
}

// HorizonDipDeg is the depression of the apparent sea horizon for an
// observer elevM meters up, in degrees: about 1.76 arcminutes per
// sqrt(meter) with standard refraction.
func HorizonDipDeg(elevM float64) float64 {
	if elevM <= 0 {
		return 0
	}
	return (1.76 / 60.0) * math.Sqrt(elevM)
}

// MoonEventsForDate computes the Moon's rise, set and transit for the
// local calendar day containing date, for an observer elevM meters
// above sea level. The Location of date defines local midnight;
// returned instants are UTC.
func MoonEventsForDate(lat, lon, elevM float64, date time.Time) DayEvents {
	altFunc := func(t time.Time) float64 {
		return MoonTopocentricAltitude(lat, lon, t)
	}
	return eventsForDate(altFunc, moonHorizonAltDeg-HorizonDipDeg(elevM), date)
}

// PlanetEventsForDate computes a planet's rise, set and transit for
// the local calendar day containing date, for an observer elevM meters
// above sea level. Returned instants are UTC.
func PlanetEventsForDate(p Planet, lat, lon, elevM float64, date time.Time) DayEvents {
	altFunc := func(t time.Time) float64 {
		return GeocentricAltitude(PlanetEquatorial(p, t), lat, lon, t)
	}
	return eventsForDate(altFunc, planetHorizonAltDeg-HorizonDipDeg(elevM), date)
}

func eventsForDate(altFunc AltitudeFunc, horizonDeg float64, date time.Time) DayEvents {
	loc := date.Location()
	startLocal := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	endLocal := startLocal.Add(24 * time.Hour)

	var ev DayEvents

	riseRes := FindAltitudeEvent(altFunc, startLocal, endLocal, horizonDeg, CrossingUp, searchSteps, searchTol)
	if riseRes.OK {
		ev.Rise = riseRes.Time.UTC()
		ev.HasRise = true
	}

	setRes := FindAltitudeEvent(altFunc, startLocal, endLocal, horizonDeg, CrossingDown, searchSteps, searchTol)
	if setRes.OK {
		ev.Set = setRes.Time.UTC()
		ev.HasSet = true
	}

	// Transit only counts when the body actually tops the horizon;
	// a culmination below the horizon is not an observable meridian
	// crossing for this calendar page.
	transitRes := FindTransit(altFunc, startLocal, endLocal, searchSteps, searchTol)
	if transitRes.OK && altFunc(transitRes.Time) > horizonDeg {
		ev.Transit = transitRes.Time.UTC()
		ev.HasTransit = true
	}

	return ev
}
