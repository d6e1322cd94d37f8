package astro

// DescribeMoonPhase maps an illumination percentage plus trend
// direction to a phase name. The trend flag is required: 50% lit is
// First Quarter when waxing and Last Quarter when waning, which the
// percentage alone cannot distinguish.
func DescribeMoonPhase(illumPct float64, waxing bool) string {
	switch {
	case illumPct < 0.5:
		return "New Moon"
	case illumPct > 99.5:
		return "Full Moon"
	case illumPct >= 49.5 && illumPct <= 50.5:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case illumPct < 50:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
