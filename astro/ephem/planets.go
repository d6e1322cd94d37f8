package ephem

import (
	"math"
	"time"
)

// Planet identifies one of the naked-eye planets.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Mars
	Jupiter
	Saturn
)

// String returns the planet name.
func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	default:
		return "unknown"
	}
}

// orbitalElements are Keplerian elements at J2000 plus per-century
// rates (JPL/Standish approximate elements, valid 1800-2050 and
// acceptable to ~arcminutes well beyond). Angles in degrees,
// semi-major axis in AU.
type orbitalElements struct {
	a, aDot       float64 // semi-major axis
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination
	L, LDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

var planetElements = map[Planet]orbitalElements{
	Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		L: 252.25032350, LDot: 149472.67411175,
		peri: 77.45779628, periDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		L: 181.97909950, LDot: 58517.81538729,
		peri: 131.60246718, periDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		L: -4.55343205, LDot: 19140.30268499,
		peri: -23.94362959, periDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		L: 34.39644051, LDot: 3034.74612775,
		peri: 14.72847983, periDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		L: 49.95424423, LDot: 1222.49362201,
		peri: 92.59887831, periDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
}

// earthElements is the Earth-Moon barycenter from the same table; the
// planets' geocentric position is heliocentric planet minus
// heliocentric Earth.
var earthElements = orbitalElements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	i: -0.00001531, iDot: -0.01294668,
	L: 100.46457166, LDot: 35999.37244981,
	peri: 102.93768193, periDot: 0.32327364,
	node: 0.0, nodeDot: 0.0,
}

// heliocentric returns the body's heliocentric ecliptic rectangular
// coordinates in AU at T Julian centuries past J2000.
func (el orbitalElements) heliocentric(T float64) (x, y, z float64) {
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	i := Deg2Rad(el.i + el.iDot*T)
	L := el.L + el.LDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	// Argument of perihelion and mean anomaly.
	w := Deg2Rad(peri - node)
	M := Deg2Rad(Normalize360(L - peri))
	node2 := Deg2Rad(node)

	E := solveKepler(M, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	cosw, sinw := math.Cos(w), math.Sin(w)
	cosn, sinn := math.Cos(node2), math.Sin(node2)
	cosi, sini := math.Cos(i), math.Sin(i)

	x = (cosw*cosn-sinw*sinn*cosi)*xp + (-sinw*cosn-cosw*sinn*cosi)*yp
	y = (cosw*sinn+sinw*cosn*cosi)*xp + (-sinw*sinn+cosw*cosn*cosi)*yp
	z = (sinw*sini)*xp + (cosw*sini)*yp
	return x, y, z
}

// solveKepler iterates E - e sin E = M by Newton's method. The
// eccentricities here are small; a handful of iterations converges
// far below the model's own accuracy.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for iter := 0; iter < 10; iter++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-8 {
			break
		}
	}
	return E
}

// PlanetEquatorial returns an approximate geocentric RA/Dec for the
// given planet at time t: heliocentric Keplerian positions for planet
// and Earth, differenced and rotated from the ecliptic to the equator.
func PlanetEquatorial(p Planet, t time.Time) Equatorial {
	T := JulianCenturies(t)

	px, py, pz := planetElements[p].heliocentric(T)
	ex, ey, ez := earthElements.heliocentric(T)

	// Geocentric ecliptic coordinates.
	gx := px - ex
	gy := py - ey
	gz := pz - ez

	eps := meanObliquityRad(t)
	xEq := gx
	yEq := gy*math.Cos(eps) - gz*math.Sin(eps)
	zEq := gy*math.Sin(eps) + gz*math.Cos(eps)

	ra := math.Atan2(yEq, xEq)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Atan2(zEq, math.Hypot(xEq, yEq))

	return Equatorial{RA: Rad2Deg(ra), Dec: Rad2Deg(dec)}
}
