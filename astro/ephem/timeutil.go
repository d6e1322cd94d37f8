package ephem

import (
	"math"
	"time"
)

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the number of UTC days since the J2000.0
// epoch. UTC stands in for TT here, which is fine at the precision of
// these models.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return DaysSinceJ2000(t) / 36525.0
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// LocalSiderealTimeDeg returns the local sidereal time in degrees for
// an observer at longitude lonDeg (east positive) at time t.
func LocalSiderealTimeDeg(t time.Time, lonDeg float64) float64 {
	d := DaysSinceJ2000(t)
	gmst := 280.46061837 + 360.98564736629*d
	return Normalize360(gmst + lonDeg)
}

// meanObliquityRad returns the mean obliquity of the ecliptic in
// radians, simple linear model.
func meanObliquityRad(t time.Time) float64 {
	d := DaysSinceJ2000(t)
	return Deg2Rad(23.439291 - 0.0000137*d)
}
