package models

import "time"

// SunEvents holds the Sun's instants for one date, facade output.
type SunEvents struct {
	Sunrise   time.Time
	Sunset    time.Time
	SolarNoon time.Time
}

// BodyEventTimes holds per-body rise/set/transit instants. Each event
// is individually optional: a body may not rise, set or culminate on a
// given local day (circumpolar / never-rises conditions).
type BodyEventTimes struct {
	Rise       time.Time
	Set        time.Time
	Transit    time.Time
	HasRise    bool
	HasSet     bool
	HasTransit bool
}

// MoonIllumination is the lit fraction of the Moon's disk plus the
// trend direction. The percentage alone cannot distinguish first from
// last quarter; Waxing carries that.
type MoonIllumination struct {
	Percent float64
	Waxing  bool
}

// SunSection is the rendered Sun display group.
type SunSection struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	SolarNoon string `json:"solar_noon"`
	Error     string `json:"error,omitempty"`
}

// MoonSection is the rendered Moon display group.
type MoonSection struct {
	IlluminationPct float64 `json:"illumination_pct"`
	PhaseName       string  `json:"phase_name"`
	Rise            string  `json:"rise"`
	Set             string  `json:"set"`
	Transit         string  `json:"transit"`
	Error           string  `json:"error,omitempty"`
}

// PlanetRow is one row of the planets table.
type PlanetRow struct {
	Body    string `json:"body"`
	Rise    string `json:"rise"`
	Set     string `json:"set"`
	Transit string `json:"transit"`
	Error   string `json:"error,omitempty"`
}

// Almanac is the full response for one resolved date.
type Almanac struct {
	Header  string       `json:"header"`
	Date    SelectedDate `json:"date"`
	Sun     SunSection   `json:"sun"`
	Moon    MoonSection  `json:"moon"`
	Planets []PlanetRow  `json:"planets"`
}
