package model

import "time"

// DayRecord is the contribution count painted onto one calendar day.
type DayRecord struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// NewGrid returns GridDays empty records ending at now, oldest first.
// Days are stepped with calendar arithmetic so a DST shift never yields
// two records for the same day.
func NewGrid(now time.Time) []DayRecord {
	grid := make([]DayRecord, GridDays)
	for i := 0; i < GridDays; i++ {
		grid[GridDays-1-i] = DayRecord{
			Date:  now.AddDate(0, 0, -i),
			Count: 0,
		}
	}
	return grid
}

// FindDay returns the index of the record on the same calendar day as date,
// or -1 when there is none.
func FindDay(records []DayRecord, date time.Time) int {
	for i := range records {
		if SameDay(records[i].Date, date) {
			return i
		}
	}
	return -1
}

// PaintedDays counts records with a positive count.
func PaintedDays(records []DayRecord) int {
	n := 0
	for _, r := range records {
		if r.Count > 0 {
			n++
		}
	}
	return n
}
