package models

import "time"

// ExternalBlock is a fixed-time commitment imported from an outside
// calendar feed. The engine treats non-all-day blocks as exclusion
// zones and never moves them.
type ExternalBlock struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"all_day"`
	Location string    `json:"location,omitempty"`
}

// OverlapsDay reports whether the block touches the calendar day
// beginning at dayStart (midnight in the relevant timezone).
func (b ExternalBlock) OverlapsDay(dayStart time.Time) bool {
	dayEnd := dayStart.AddDate(0, 0, 1)
	return b.Start.Before(dayEnd) && b.End.After(dayStart)
}
