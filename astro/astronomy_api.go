package astro

import (
	"astrocal-server/models"
)

// Body names a celestial body the calendar reports on.
type Body string

const (
	BodyMoon    Body = "Moon"
	BodyMercury Body = "Mercury"
	BodyVenus   Body = "Venus"
	BodyMars    Body = "Mars"
	BodyJupiter Body = "Jupiter"
	BodySaturn  Body = "Saturn"
)

// Planets lists the naked-eye planets in display order.
var Planets = []Body{BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn}

// AstronomyAPI defines the interface for querying ephemeris data for
// the fixed observer site. Implementations are deterministic for a
// given (date, body); absent rise/set/transit events are reported via
// the flags on BodyEventTimes, never as errors.
type AstronomyAPI interface {
	GetSunTimes(date models.SelectedDate) (*models.SunEvents, error)
	GetBodyEvents(date models.SelectedDate, body Body) (*models.BodyEventTimes, error)
	GetMoonIllumination(date models.SelectedDate) (*models.MoonIllumination, error)
}
