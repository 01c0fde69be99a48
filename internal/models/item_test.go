package models

import "testing"

func TestDueWindowUrgencyOrder(t *testing.T) {
	windows := []DueWindow{DueToday, DueTomorrow, DueThisWeek, DueNextWeek, DueThisMonth, DueSomeday}
	for i := 1; i < len(windows); i++ {
		if windows[i-1].Urgency() >= windows[i].Urgency() {
			t.Errorf("Expected %s more urgent than %s", windows[i-1], windows[i])
		}
	}
}

func TestDueWindowValid(t *testing.T) {
	for _, d := range []DueWindow{DueToday, DueTomorrow, DueThisWeek, DueNextWeek, DueThisMonth, DueSomeday} {
		if !d.Valid() {
			t.Errorf("Expected %s to be valid", d)
		}
	}
	if DueWindow("whenever").Valid() {
		t.Error("Expected unknown window to be invalid")
	}
	if DueWindow("").Valid() {
		t.Error("Expected empty window to be invalid")
	}
}

func TestItemValidate(t *testing.T) {
	it := Item{ID: "i1", Title: "Call bank", DurationMin: 15, Due: DueToday}
	if err := it.Validate(); err != nil {
		t.Errorf("Expected valid item, got %v", err)
	}

	it.Title = ""
	if err := it.Validate(); err == nil {
		t.Error("Expected error for empty title")
	}

	it = Item{ID: "i1", Title: "Call bank", DurationMin: 0, Due: DueToday}
	if err := it.Validate(); err == nil {
		t.Error("Expected error for zero duration")
	}

	it = Item{ID: "i1", Title: "Call bank", DurationMin: 15, Due: "eventually"}
	if err := it.Validate(); err == nil {
		t.Error("Expected error for unknown due window")
	}
}
