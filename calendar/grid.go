package calendar

import (
	"fmt"
	"time"

	"astrocal-server/config"
	"astrocal-server/models"
)

// ErrInvalidDate indicates a year/month outside the supported range.
var ErrInvalidDate = fmt.Errorf("date out of supported range (%d-%d)",
	config.MIN_SUPPORTED_YEAR, config.MAX_SUPPORTED_YEAR)

// Weekdays are the Monday-first column headers.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MonthNames maps month 1..12 to its English name.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// GenerateGrid lays the given month out into Monday-first weeks of 7
// cells, with 0 padding cells before the 1st and after the last day.
func GenerateGrid(year, month int) (models.CalendarGrid, error) {
	if year < config.MIN_SUPPORTED_YEAR || year > config.MAX_SUPPORTED_YEAR {
		return models.CalendarGrid{}, ErrInvalidDate
	}
	if month < 1 || month > 12 {
		return models.CalendarGrid{}, ErrInvalidDate
	}

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Monday-first offset of the 1st within its week.
	leadingGap := (int(firstOfMonth.Weekday()) + 6) % 7
	daysInMonth := models.DaysInMonth(year, month)

	var weeks [][]int
	week := make([]int, 7)
	col := leadingGap
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return models.CalendarGrid{
		Year:     year,
		Month:    month,
		Weekdays: Weekdays,
		Weeks:    weeks,
	}, nil
}

// MonthName returns the English name for month 1..12, or "" otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}
