package ephem

import (
	"math"
	"time"
)

// Equatorial holds geocentric equatorial coordinates in degrees.
// RA is kept in degrees (0-360) to stay consistent with the sidereal
// time helpers.
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// SunEquatorial returns an approximate geocentric RA/Dec for the Sun
// at time t. Standard low/medium-precision solar model (simplified
// NOAA / Meeus), good to arcminute level:
//
//	g   = mean anomaly of the Sun
//	q   = mean longitude of the Sun
//	L   = ecliptic longitude with equation of center
//	eps = obliquity of the ecliptic
func SunEquatorial(t time.Time) Equatorial {
	d := DaysSinceJ2000(t)

	g := Deg2Rad(357.529 + 0.98560028*d)
	q := Deg2Rad(280.459 + 0.98564736*d)

	L := q +
		Deg2Rad(1.915)*math.Sin(g) +
		Deg2Rad(0.020)*math.Sin(2*g)

	eps := Deg2Rad(23.439 - 0.00000036*d)

	x := math.Cos(L)
	y := math.Cos(eps) * math.Sin(L)
	z := math.Sin(eps) * math.Sin(L)

	ra := math.Atan2(y, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(z)

	return Equatorial{RA: Rad2Deg(ra), Dec: Rad2Deg(dec)}
}

// MoonPosition extends Equatorial with the Earth-Moon distance, which
// drives the parallax and horizon-altitude corrections.
type MoonPosition struct {
	RA       float64 // degrees
	Dec      float64 // degrees
	Distance float64 // km
}

// MoonEquatorial returns an approximate geocentric RA/Dec and distance
// for the Moon at time t, from truncated Meeus-style series over the
// standard fundamental arguments:
//
//	L' = mean longitude, M = solar mean anomaly, Mm = lunar mean
//	anomaly, D = mean elongation, F = argument of latitude.
func MoonEquatorial(t time.Time) MoonPosition {
	d := DaysSinceJ2000(t)

	Lprime := Normalize360(218.3164477 + 13.17639648*d)
	M := Normalize360(357.5291092 + 0.98560028*d)
	Mm := Normalize360(134.9633964 + 13.06499295*d)
	D := Normalize360(297.8501921 + 12.19074912*d)
	F := Normalize360(93.2720950 + 13.22935024*d)

	Lr := Deg2Rad(Lprime)
	Mr := Deg2Rad(M)
	Mmr := Deg2Rad(Mm)
	Dr := Deg2Rad(D)
	Fr := Deg2Rad(F)

	// Ecliptic longitude, main periodic terms only.
	lon := Lr +
		Deg2Rad(6.289)*math.Sin(Mmr) +
		Deg2Rad(1.274)*math.Sin(2*Dr-Mmr) +
		Deg2Rad(0.658)*math.Sin(2*Dr) +
		Deg2Rad(0.214)*math.Sin(2*Mmr) -
		Deg2Rad(0.186)*math.Sin(Mr) -
		Deg2Rad(0.114)*math.Sin(2*Fr)

	// Ecliptic latitude, similarly truncated.
	lat := Deg2Rad(5.128)*math.Sin(Fr) +
		Deg2Rad(0.280)*math.Sin(Mmr+Fr) +
		Deg2Rad(0.277)*math.Sin(Mmr-Fr) +
		Deg2Rad(0.173)*math.Sin(2*Dr-Fr)

	eps := meanObliquityRad(t)

	x := math.Cos(lat) * math.Cos(lon)
	y := math.Cos(lat) * math.Sin(lon)
	z := math.Sin(lat)

	yEq := y*math.Cos(eps) - z*math.Sin(eps)
	zEq := y*math.Sin(eps) + z*math.Cos(eps)

	ra := math.Atan2(yEq, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(zEq)

	// Earth-Moon distance in km, truncated series.
	delta := 385000.56 -
		20905.0*math.Cos(Mmr) -
		3699.0*math.Cos(2*Dr-Mmr) -
		2956.0*math.Cos(2*Dr) -
		570.0*math.Cos(2*Mmr) -
		246.0*math.Cos(2*Dr+Mmr)

	return MoonPosition{RA: Rad2Deg(ra), Dec: Rad2Deg(dec), Distance: delta}
}

// GeocentricAltitude computes the geometric altitude in degrees of a
// body with equatorial coordinates eq, for an observer at (lat, lon)
// at time t. Good enough for the Sun and planets, where parallax is
// negligible at this precision.
func GeocentricAltitude(eq Equatorial, lat, lon float64, t time.Time) float64 {
	raRad := Deg2Rad(eq.RA)
	decRad := Deg2Rad(eq.Dec)
	latRad := Deg2Rad(lat)

	H := Deg2Rad(LocalSiderealTimeDeg(t, lon)) - raRad
	for H > math.Pi {
		H -= 2 * math.Pi
	}
	for H < -math.Pi {
		H += 2 * math.Pi
	}

	sinAlt := math.Sin(latRad)*math.Sin(decRad) +
		math.Cos(latRad)*math.Cos(decRad)*math.Cos(H)
	return Rad2Deg(math.Asin(sinAlt))
}

// MoonTopocentricAltitude computes the Moon's apparent altitude in
// degrees at (lat, lon) at time t, applying the horizontal-parallax
// correction (the Moon is close enough that the observer's offset from
// the geocenter moves it by up to a degree).
func MoonTopocentricAltitude(lat, lon float64, t time.Time) float64 {
	pos := MoonEquatorial(t)

	raRad := Deg2Rad(pos.RA)
	decRad := Deg2Rad(pos.Dec)
	latRad := Deg2Rad(lat)

	lstRad := Deg2Rad(LocalSiderealTimeDeg(t, lon))

	H := lstRad - raRad
	for H > math.Pi {
		H -= 2 * math.Pi
	}
	for H < -math.Pi {
		H += 2 * math.Pi
	}

	pi := horizontalParallax(pos.Distance)

	sinPhi := math.Sin(latRad)
	cosPhi := math.Cos(latRad)

	// Meeus approximate factors for an observer at sea level.
	rhoSinPhi := 0.99883 * sinPhi
	rhoCosPhi := 0.99883 * cosPhi

	sinDec := math.Sin(decRad)
	cosDec := math.Cos(decRad)
	sinPi := math.Sin(pi)

	deltaAlpha := math.Atan2(
		-rhoCosPhi*sinPi*math.Sin(H),
		cosDec-rhoCosPhi*sinPi*math.Cos(H),
	)

	raTopo := raRad + deltaAlpha
	decTopo := math.Atan2(
		sinDec-rhoSinPhi*sinPi,
		cosDec-rhoCosPhi*sinPi*math.Cos(H),
	)

	Ht := lstRad - raTopo
	for Ht > math.Pi {
		Ht -= 2 * math.Pi
	}
	for Ht < -math.Pi {
		Ht += 2 * math.Pi
	}

	sinAlt := sinPhi*math.Sin(decTopo) + cosPhi*math.Cos(decTopo)*math.Cos(Ht)
	return Rad2Deg(math.Asin(sinAlt))
}

func horizontalParallax(distanceKm float64) float64 {
	const earthRadiusKm = 6378.14
	if distanceKm <= earthRadiusKm {
		// invalid distance, clamp to ~1 degree
		return Deg2Rad(1.0)
	}
	return math.Asin(earthRadiusKm / distanceKm) // radians
}
