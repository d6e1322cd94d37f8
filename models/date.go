package models

import (
	"fmt"
	"time"
)

// SelectedDate is the single authoritative date a session is looking at.
type SelectedDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewSelectedDate builds a SelectedDate from a time.Time.
func NewSelectedDate(t time.Time) SelectedDate {
	return SelectedDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// DaysInMonth returns the number of days in the given month.
// Day 0 of the next month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Valid reports whether the date names a real calendar day.
func (d SelectedDate) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Time returns the date at the given wall-clock hour in loc.
func (d SelectedDate) Time(hour int, loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, 0, 0, 0, loc)
}

// ISO formats the date as yyyy-mm-dd.
func (d SelectedDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LongForm formats the date as "Weekday, DD Month YYYY".
func (d SelectedDate) LongForm() string {
	return d.Time(0, time.UTC).Format("Monday, 02 January 2006")
}

func (d SelectedDate) ToString() string {
	return fmt.Sprintf("SelectedDate(year=%d, month=%d, day=%d)", d.Year, d.Month, d.Day)
}
