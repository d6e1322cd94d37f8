package ephem

import (
	"time"
)

// AltitudeFunc returns altitude in degrees at time t (topocentric).
type AltitudeFunc func(t time.Time) float64

// EventType describes whether we are looking for a rising or setting
// crossing.
type EventType int

const (
	// CrossingUp means altitude is increasing through the target value (rise).
	CrossingUp EventType = iota
	// CrossingDown means altitude is decreasing through the target value (set).
	CrossingDown
)

// Result holds the output of an altitude event search.
type Result struct {
	Time time.Time // approximate time of the event
	OK   bool      // true if an event was found
}

// FindAltitudeEvent searches [start, end] for a time where f crosses
// targetDeg in the direction given by eventType, using a
// bracket-then-bisect strategy. Generic over any body.
func FindAltitudeEvent(f AltitudeFunc, start, end time.Time, targetDeg float64, eventType EventType, steps int, tol time.Duration) Result {
	if !start.Before(end) {
		return Result{OK: false}
	}
	if steps < 2 {
		steps = 2
	}

	// Sample across [start, end] to find a sign change in
	// (altitude - target).
	interval := end.Sub(start) / time.Duration(steps-1)

	var (
		prevT   = start
		prevAlt = f(prevT) - targetDeg
	)

	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		alt := f(t) - targetDeg

		if hasCrossing(prevAlt, alt, eventType) {
			return bisect(f, prevT, t, targetDeg, eventType, tol)
		}

		prevT, prevAlt = t, alt
	}

	return Result{OK: false}
}

// FindTransit searches [start, end] for the time of maximum altitude:
// the body's meridian crossing for that day. It samples for the
// coarse peak, then narrows the bracket by ternary search. Returns
// OK=false only on a degenerate window.
func FindTransit(f AltitudeFunc, start, end time.Time, steps int, tol time.Duration) Result {
	if !start.Before(end) {
		return Result{OK: false}
	}
	if steps < 3 {
		steps = 3
	}

	interval := end.Sub(start) / time.Duration(steps-1)

	bestT := start
	bestAlt := f(start)
	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		if alt := f(t); alt > bestAlt {
			bestT, bestAlt = t, alt
		}
	}

	// Bracket the peak one sample either side, clamped to the window.
	lo := bestT.Add(-interval)
	if lo.Before(start) {
		lo = start
	}
	hi := bestT.Add(interval)
	if hi.After(end) {
		hi = end
	}

	for hi.Sub(lo) > tol {
		third := hi.Sub(lo) / 3
		m1 := lo.Add(third)
		m2 := hi.Add(-third)
		if f(m1) < f(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}

	return Result{Time: lo.Add(hi.Sub(lo) / 2), OK: true}
}

func hasCrossing(a1, a2 float64, eventType EventType) bool {
	switch eventType {
	case CrossingUp:
		return a1 < 0 && a2 >= 0
	case CrossingDown:
		return a1 > 0 && a2 <= 0
	default:
		return a1*a2 <= 0
	}
}

func bisect(f AltitudeFunc, a, b time.Time, targetDeg float64, eventType EventType, tol time.Duration) Result {
	var (
		altA = f(a) - targetDeg
		altB = f(b) - targetDeg
	)

	if !hasCrossing(altA, altB, eventType) {
		return Result{OK: false}
	}

	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		altM := f(mid) - targetDeg

		if hasCrossing(altA, altM, eventType) {
			b = mid
			altB = altM
		} else {
			a = mid
			altA = altM
		}
	}

	return Result{
		Time: a.Add(b.Sub(a) / 2),
		OK:   true,
	}
}
