package models

import (
	"testing"
	"time"
)

func validObligation() Obligation {
	return Obligation{
		ID:          "o1",
		Title:       "Review inbox",
		DurationMin: 30,
		Repeats:     1,
		Recurrence:  Recurrence{Kind: RecurrenceDaily},
		Placement:   PlacementMorning,
		Active:      true,
	}
}

func TestObligationValidate(t *testing.T) {
	if err := validObligation().Validate(); err != nil {
		t.Errorf("Expected valid obligation, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Obligation)
	}{
		{"empty title", func(o *Obligation) { o.Title = "" }},
		{"zero duration", func(o *Obligation) { o.DurationMin = 0 }},
		{"negative duration", func(o *Obligation) { o.DurationMin = -10 }},
		{"zero repeats", func(o *Obligation) { o.Repeats = 0 }},
		{"too many repeats", func(o *Obligation) { o.Repeats = 6 }},
		{"multi repeat without spread", func(o *Obligation) { o.Repeats = 3 }},
		{"weekly without weekdays", func(o *Obligation) {
			o.Recurrence = Recurrence{Kind: RecurrenceWeekly}
		}},
		{"monthly day zero", func(o *Obligation) {
			o.Recurrence = Recurrence{Kind: RecurrenceMonthly}
		}},
		{"monthly day 32", func(o *Obligation) {
			o.Recurrence = Recurrence{Kind: RecurrenceMonthly, MonthDay: 32}
		}},
		{"unknown recurrence kind", func(o *Obligation) {
			o.Recurrence = Recurrence{Kind: "yearly"}
		}},
		{"unknown placement", func(o *Obligation) { o.Placement = "evening" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := validObligation()
			tc.mutate(&o)
			if err := o.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestObligationValidate_SpreadRepeats(t *testing.T) {
	o := validObligation()
	o.Repeats = 3
	o.Placement = PlacementSpread
	if err := o.Validate(); err != nil {
		t.Errorf("Expected repeated spread obligation to be valid, got %v", err)
	}
}

func TestObligationSpread(t *testing.T) {
	o := validObligation()
	if o.Spread() {
		t.Error("Single-repeat morning obligation should not spread")
	}

	o.Placement = PlacementSpread
	if !o.Spread() {
		t.Error("Spread placement should spread")
	}

	o = validObligation()
	o.Repeats = 2
	o.Placement = PlacementSpread
	if !o.Spread() {
		t.Error("Multi-repeat obligation should spread")
	}
}

func TestRecurrenceWeekdayMask(t *testing.T) {
	o := validObligation()
	o.Recurrence = Recurrence{
		Kind:     RecurrenceDaily,
		Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Daily recurrence with a mask should be valid, got %v", err)
	}
}
