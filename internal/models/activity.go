package models

import "time"

type ActivitySource string

const (
	SourceObligation ActivitySource = "obligation"
	SourceItem       ActivitySource = "item"
	SourceBreak      ActivitySource = "break"
	SourceCalendar   ActivitySource = "calendar"
)

type ActivityStatus string

const (
	StatusPending ActivityStatus = "pending"
	StatusActive  ActivityStatus = "active"
	StatusDone    ActivityStatus = "done"
	StatusSkipped ActivityStatus = "skipped"
	StatusOverran ActivityStatus = "overran"
)

// Activity is one placed entry in a day layout. The engine creates
// activities fresh on every invocation; only the presentation layer
// mutates Status and the actual-time fields afterward.
type Activity struct {
	ID          string         `json:"id"`
	Source      ActivitySource `json:"source"`
	SourceID    string         `json:"source_id,omitempty"`
	Title       string         `json:"title"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	DurationMin int            `json:"duration_min"`
	Due         DueWindow      `json:"due,omitempty"`
	Status      ActivityStatus `json:"status"`
	Color       string         `json:"color"`
	ActualStart *time.Time     `json:"actual_start,omitempty"`
	ActualEnd   *time.Time     `json:"actual_end,omitempty"`
}

// Extend lengthens the scheduled window and marks the activity overran.
// This is the only sanctioned way to grow a placed window after layout.
func (a *Activity) Extend(minutes int) {
	if minutes <= 0 {
		return
	}
	a.End = a.End.Add(time.Duration(minutes) * time.Minute)
	a.DurationMin += minutes
	a.Status = StatusOverran
}

// Schedule is the stored result of one layout run for a date, plus the
// hash of the inputs that produced it. The hash lets callers decide
// whether manually applied statuses can be carried into a re-run.
type Schedule struct {
	Date        string     `json:"date"` // YYYY-MM-DD
	InputHash   uint64     `json:"input_hash"`
	Activities  []Activity `json:"activities"`
	GeneratedAt time.Time  `json:"generated_at"`
}
