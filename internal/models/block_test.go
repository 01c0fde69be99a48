package models

import (
	"testing"
	"time"
)

func TestExternalBlockOverlapsDay(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside the day", day.Add(10 * time.Hour), day.Add(11 * time.Hour), true},
		{"spans midnight into the day", day.Add(-time.Hour), day.Add(time.Hour), true},
		{"spans midnight out of the day", day.Add(23 * time.Hour), day.Add(25 * time.Hour), true},
		{"whole previous day", day.AddDate(0, 0, -1), day, false},
		{"whole next day", day.AddDate(0, 0, 1), day.AddDate(0, 0, 2), false},
		{"multi-day covering", day.AddDate(0, 0, -1), day.AddDate(0, 0, 2), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := ExternalBlock{Start: tc.start, End: tc.end}
			if got := b.OverlapsDay(day); got != tc.want {
				t.Errorf("OverlapsDay = %v, want %v", got, tc.want)
			}
		})
	}
}
