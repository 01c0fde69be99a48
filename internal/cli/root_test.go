package cli

import (
	"testing"
	"time"

	"daygrid/internal/models"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"mon", time.Monday, false},
		{"Monday", time.Monday, false},
		{" FRI ", time.Friday, false},
		{"0", time.Sunday, false},
		{"6", time.Saturday, false},
		{"7", 0, true},
		{"noday", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseWeekday(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays("mon,wed,fri")
	if err != nil {
		t.Fatalf("ParseWeekdays failed: %v", err)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(got) != len(want) {
		t.Fatalf("Expected %d weekdays, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if _, err := ParseWeekdays("mon,notaday"); err == nil {
		t.Error("Expected error for list with an invalid entry")
	}
}

func TestParseDue(t *testing.T) {
	cases := []struct {
		in      string
		want    models.DueWindow
		wantErr bool
	}{
		{"today", models.DueToday, false},
		{"this-week", models.DueThisWeek, false},
		{"this_week", models.DueThisWeek, false},
		{"NEXT-WEEK", models.DueNextWeek, false},
		{" someday ", models.DueSomeday, false},
		{"yesterday", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseDue(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDue(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDue(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatDue(t *testing.T) {
	if got := FormatDue(models.DueThisWeek); got != "this week" {
		t.Errorf("Expected %q, got %q", "this week", got)
	}
	if got := FormatDue(models.DueToday); got != "today" {
		t.Errorf("Expected %q, got %q", "today", got)
	}
}

func TestFormatRecurrence(t *testing.T) {
	cases := []struct {
		rec  models.Recurrence
		want string
	}{
		{models.Recurrence{Kind: models.RecurrenceDaily}, "daily"},
		{models.Recurrence{Kind: models.RecurrenceDaily, Weekdays: []time.Weekday{time.Monday, time.Friday}}, "daily on Mon,Fri"},
		{models.Recurrence{Kind: models.RecurrenceWeekly, Weekdays: []time.Weekday{time.Wednesday}}, "weekly on Wed"},
		{models.Recurrence{Kind: models.RecurrenceMonthly, MonthDay: 15}, "monthly on day 15"},
		{models.Recurrence{Kind: "yearly"}, "unknown"},
	}
	for _, tc := range cases {
		if got := FormatRecurrence(tc.rec); got != tc.want {
			t.Errorf("FormatRecurrence(%+v) = %q, want %q", tc.rec, got, tc.want)
		}
	}
}
