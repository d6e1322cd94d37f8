package ephem

import (
	"math"
	"testing"
	"time"
)

func TestSolveKepler_SatisfiesEquation(t *testing.T) {
	cases := []struct{ M, e float64 }{
		{0.5, 0.0167},
		{2.0, 0.2056}, // Mercury-like eccentricity
		{5.5, 0.0934},
		{0.0, 0.0484},
	}
	for _, c := range cases {
		E := solveKepler(c.M, c.e)
		if residual := E - c.e*math.Sin(E) - c.M; math.Abs(residual) > 1e-6 {
			t.Errorf("solveKepler(%f, %f): residual %g", c.M, c.e, residual)
		}
	}
}

func TestPlanetEquatorial_Ranges(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	for _, p := range []Planet{Mercury, Venus, Mars, Jupiter, Saturn} {
		eq := PlanetEquatorial(p, at)
		if eq.RA < 0 || eq.RA >= 360 {
			t.Errorf("%s: RA out of range: %f", p, eq.RA)
		}
		// Planets stay near the ecliptic; declination within ~+-30.
		if math.Abs(eq.Dec) > 35 {
			t.Errorf("%s: declination out of range: %f", p, eq.Dec)
		}
	}
}

func TestPlanetEquatorial_MercuryNearSun(t *testing.T) {
	// Mercury's elongation from the Sun never exceeds ~28 degrees.
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sun := SunEquatorial(at)
	mercury := PlanetEquatorial(Mercury, at)

	sep := math.Abs(sun.RA - mercury.RA)
	if sep > 180 {
		sep = 360 - sep
	}
	if sep > 35 {
		t.Errorf("Mercury %0.1f degrees of RA from the Sun, expected < 35", sep)
	}
}

func TestPlanetEventsForDate_TransitFound(t *testing.T) {
	// At 10 degrees north every planet culminates well above the
	// horizon, so a transit must be reported on any date.
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, ist)
	for _, p := range []Planet{Mercury, Venus, Mars, Jupiter, Saturn} {
		ev := PlanetEventsForDate(p, testLat, testLon, testElev, date)
		if !ev.HasTransit {
			t.Errorf("%s: expected a transit", p)
			continue
		}
		local := ev.Transit.In(ist)
		if local.Before(date) || local.After(date.Add(24*time.Hour)) {
			t.Errorf("%s: transit %v outside the local day", p, local)
		}
	}
}

func TestMoonEventsForDate_WithinDay(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, ist)
	ev := MoonEventsForDate(testLat, testLon, testElev, date)

	dayEnd := date.Add(24 * time.Hour)
	check := func(name string, has bool, at time.Time) {
		if !has {
			return
		}
		local := at.In(ist)
		if local.Before(date) || local.After(dayEnd) {
			t.Errorf("moon %s %v outside the local day", name, local)
		}
	}
	check("rise", ev.HasRise, ev.Rise)
	check("set", ev.HasSet, ev.Set)
	check("transit", ev.HasTransit, ev.Transit)

	if !ev.HasRise && !ev.HasSet && !ev.HasTransit {
		t.Error("expected at least one lunar event at this latitude")
	}
}

func TestHorizonDipDeg(t *testing.T) {
	if dip := HorizonDipDeg(0); dip != 0 {
		t.Errorf("sea level dip = %f, want 0", dip)
	}
	if dip := HorizonDipDeg(-5); dip != 0 {
		t.Errorf("negative elevation dip = %f, want 0", dip)
	}
	// 1.76' * sqrt(2133) is about 1.35 degrees.
	if dip := HorizonDipDeg(testElev); dip < 1.3 || dip > 1.4 {
		t.Errorf("dip at %0.f m = %f, want ~1.35", testElev, dip)
	}
}

func TestPlanetEventsForDate_ElevationWidensDay(t *testing.T) {
	// A depressed horizon means an earlier rise and a later set.
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, ist)
	sea := PlanetEventsForDate(Mars, testLat, testLon, 0, date)
	high := PlanetEventsForDate(Mars, testLat, testLon, testElev, date)

	if sea.HasRise && high.HasRise && !high.Rise.Before(sea.Rise) {
		t.Errorf("elevated rise %v not before sea-level rise %v", high.Rise, sea.Rise)
	}
	if sea.HasSet && high.HasSet && !high.Set.After(sea.Set) {
		t.Errorf("elevated set %v not after sea-level set %v", high.Set, sea.Set)
	}
	if !sea.HasRise && !sea.HasSet {
		t.Skip("no rise or set for Mars on this date")
	}
}
