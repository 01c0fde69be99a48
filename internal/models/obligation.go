package models

import (
	"fmt"
	"time"

	"daygrid/internal/constants"
)

type RecurrenceKind string

const (
	// RecurrenceDaily matches every day, or only the listed weekdays
	// when a weekday mask is present.
	RecurrenceDaily RecurrenceKind = "daily"
	// RecurrenceWeekly matches only the listed weekdays.
	RecurrenceWeekly RecurrenceKind = "weekly"
	// RecurrenceMonthly matches a single day of the month.
	RecurrenceMonthly RecurrenceKind = "monthly"
)

type Placement string

const (
	PlacementMorning   Placement = "morning"
	PlacementMidday    Placement = "midday"
	PlacementAfternoon Placement = "afternoon"
	PlacementNone      Placement = "none"
	PlacementSpread    Placement = "spread"
)

type Recurrence struct {
	Kind     RecurrenceKind `json:"kind"`
	Weekdays []time.Weekday `json:"weekdays,omitempty"`
	MonthDay int            `json:"month_day,omitempty"`
}

// Obligation is a recurring task the user performs on a schedule. It is
// read-only to the layout engine.
type Obligation struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	DurationMin int        `json:"duration_min"`
	Repeats     int        `json:"repeats"`
	Recurrence  Recurrence `json:"recurrence"`
	Placement   Placement  `json:"placement"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (o Obligation) Validate() error {
	if o.Title == "" {
		return fmt.Errorf("obligation title cannot be empty")
	}
	if o.DurationMin <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if o.Repeats < 1 || o.Repeats > constants.MaxRepeats {
		return fmt.Errorf("repeats must be between 1 and %d", constants.MaxRepeats)
	}
	if o.Repeats > 1 && o.Placement != PlacementSpread {
		return fmt.Errorf("obligations with repeats > 1 must use spread placement")
	}
	switch o.Recurrence.Kind {
	case RecurrenceDaily:
		// weekday mask optional
	case RecurrenceWeekly:
		if len(o.Recurrence.Weekdays) == 0 {
			return fmt.Errorf("weekly recurrence requires at least one weekday")
		}
	case RecurrenceMonthly:
		if o.Recurrence.MonthDay < 1 || o.Recurrence.MonthDay > 31 {
			return fmt.Errorf("month day must be between 1 and 31")
		}
	default:
		return fmt.Errorf("invalid recurrence kind: %s", o.Recurrence.Kind)
	}
	switch o.Placement {
	case PlacementMorning, PlacementMidday, PlacementAfternoon, PlacementNone, PlacementSpread:
	default:
		return fmt.Errorf("invalid placement: %s", o.Placement)
	}
	return nil
}

// Spread reports whether the obligation's instances are distributed
// evenly across the work window instead of bucketed by preference.
func (o Obligation) Spread() bool {
	return o.Repeats > 1 || o.Placement == PlacementSpread
}
