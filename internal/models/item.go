package models

import (
	"fmt"
	"time"
)

type DueWindow string

const (
	DueToday     DueWindow = "today"
	DueTomorrow  DueWindow = "tomorrow"
	DueThisWeek  DueWindow = "this_week"
	DueNextWeek  DueWindow = "next_week"
	DueThisMonth DueWindow = "this_month"
	DueSomeday   DueWindow = "someday"
)

// Urgency orders due windows for placement, lowest first.
func (d DueWindow) Urgency() int {
	switch d {
	case DueToday:
		return 0
	case DueTomorrow:
		return 1
	case DueThisWeek:
		return 2
	case DueNextWeek:
		return 3
	case DueThisMonth:
		return 4
	case DueSomeday:
		return 5
	default:
		return 6
	}
}

func (d DueWindow) Valid() bool {
	return d.Urgency() <= 5
}

// Item is a one-off to-do tagged with a fuzzy due-by window. Only
// incomplete items are eligible for placement.
type Item struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Notes        string    `json:"notes,omitempty"`
	DurationMin  int       `json:"duration_min"`
	Due          DueWindow `json:"due"`
	Done         bool      `json:"done"`
	CreatedAt    time.Time `json:"created_at"`
	PostponeNote string    `json:"postpone_note,omitempty"`
}

func (i Item) Validate() error {
	if i.Title == "" {
		return fmt.Errorf("item title cannot be empty")
	}
	if i.DurationMin <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if !i.Due.Valid() {
		return fmt.Errorf("invalid due window: %s", i.Due)
	}
	return nil
}
