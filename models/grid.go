package models

// CalendarGrid is a Monday-first month layout. Each week holds exactly
// 7 cells; 0 marks a padding cell outside the month.
type CalendarGrid struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Weekdays []string `json:"weekdays"`
	Weeks    [][]int  `json:"weeks"`
}
