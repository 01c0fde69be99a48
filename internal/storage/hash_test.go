package storage

import (
	"testing"
	"time"

	"daygrid/internal/models"
)

func hashFixtures() ([]models.Obligation, []models.Item, []models.ExternalBlock, models.DayConfig) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	obligations := []models.Obligation{{
		ID: "o1", Title: "Email", DurationMin: 30, Repeats: 1,
		Recurrence: models.Recurrence{Kind: models.RecurrenceDaily},
		Placement:  models.PlacementMorning, Active: true, CreatedAt: created,
	}}
	items := []models.Item{{
		ID: "i1", Title: "Call bank", DurationMin: 15,
		Due: models.DueToday, CreatedAt: created,
	}}
	blocks := []models.ExternalBlock{{
		ID: "b1", Title: "Standup",
		Start: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC),
	}}
	cfg := models.DayConfig{Enabled: true, DayStart: "09:00", DayEnd: "17:00", BreakMin: 10}
	return obligations, items, blocks, cfg
}

func TestHashLayoutInputs_Deterministic(t *testing.T) {
	obligations, items, blocks, cfg := hashFixtures()

	h1, err := HashLayoutInputs(obligations, items, blocks, cfg, "2025-03-12", "2025-03-12")
	if err != nil {
		t.Fatalf("HashLayoutInputs failed: %v", err)
	}
	h2, err := HashLayoutInputs(obligations, items, blocks, cfg, "2025-03-12", "2025-03-12")
	if err != nil {
		t.Fatalf("HashLayoutInputs failed: %v", err)
	}
	if h1 != h2 {
		t.Errorf("Expected identical hashes, got %d and %d", h1, h2)
	}
}

func TestHashLayoutInputs_SensitiveToChanges(t *testing.T) {
	obligations, items, blocks, cfg := hashFixtures()
	base, err := HashLayoutInputs(obligations, items, blocks, cfg, "2025-03-12", "2025-03-12")
	if err != nil {
		t.Fatalf("HashLayoutInputs failed: %v", err)
	}

	items[0].Title = "Call the other bank"
	changed, err := HashLayoutInputs(obligations, items, blocks, cfg, "2025-03-12", "2025-03-12")
	if err != nil {
		t.Fatalf("HashLayoutInputs failed: %v", err)
	}
	if base == changed {
		t.Error("Expected item change to alter the hash")
	}

	obligations, items, blocks, cfg = hashFixtures()
	otherDay, err := HashLayoutInputs(obligations, items, blocks, cfg, "2025-03-13", "2025-03-12")
	if err != nil {
		t.Fatalf("HashLayoutInputs failed: %v", err)
	}
	if base == otherDay {
		t.Error("Expected target date change to alter the hash")
	}

	otherToday, err := HashLayoutInputs(obligations, items, blocks, cfg, "2025-03-12", "2025-03-13")
	if err != nil {
		t.Fatalf("HashLayoutInputs failed: %v", err)
	}
	if base == otherToday {
		t.Error("Expected reference date change to alter the hash")
	}
}

func carryFixture(hash uint64) models.Schedule {
	start := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	return models.Schedule{
		Date:      "2025-03-12",
		InputHash: hash,
		Activities: []models.Activity{
			{
				ID: "fresh-1", Source: models.SourceObligation, SourceID: "o1",
				Title: "Email", Start: start, End: start.Add(30 * time.Minute),
				DurationMin: 30, Status: models.StatusPending,
			},
			{
				ID: "fresh-2", Source: models.SourceItem, SourceID: "i1",
				Title: "Call bank", Start: start.Add(30 * time.Minute), End: start.Add(45 * time.Minute),
				DurationMin: 15, Status: models.StatusPending,
			},
		},
	}
}

func TestCarryStatuses_CopiesWhenHashesMatch(t *testing.T) {
	prev := carryFixture(42)
	started := time.Date(2025, 3, 12, 9, 2, 0, 0, time.UTC)
	prev.Activities[0].Status = models.StatusDone
	prev.Activities[0].ActualStart = &started
	prev.Activities[1].Status = models.StatusSkipped

	next := carryFixture(42)
	CarryStatuses(prev, &next)

	if next.Activities[0].Status != models.StatusDone {
		t.Errorf("Expected done status carried, got %s", next.Activities[0].Status)
	}
	if next.Activities[0].ActualStart == nil || !next.Activities[0].ActualStart.Equal(started) {
		t.Error("Expected actual start carried")
	}
	if next.Activities[1].Status != models.StatusSkipped {
		t.Errorf("Expected skipped status carried, got %s", next.Activities[1].Status)
	}
	if next.Activities[0].ID != "fresh-1" {
		t.Error("Fresh activity IDs must be kept")
	}
}

func TestCarryStatuses_PreservesExtendedWindows(t *testing.T) {
	prev := carryFixture(42)
	prev.Activities[0].Extend(15)

	next := carryFixture(42)
	CarryStatuses(prev, &next)

	if next.Activities[0].Status != models.StatusOverran {
		t.Errorf("Expected overran status carried, got %s", next.Activities[0].Status)
	}
	if next.Activities[0].DurationMin != 45 {
		t.Errorf("Expected extended duration carried, got %d", next.Activities[0].DurationMin)
	}
	if !next.Activities[0].End.Equal(prev.Activities[0].End) {
		t.Error("Expected extended end carried")
	}
}

func TestCarryStatuses_SkipsOnHashMismatch(t *testing.T) {
	prev := carryFixture(42)
	prev.Activities[0].Status = models.StatusDone

	next := carryFixture(43)
	CarryStatuses(prev, &next)

	if next.Activities[0].Status != models.StatusPending {
		t.Errorf("Expected statuses discarded on hash mismatch, got %s", next.Activities[0].Status)
	}
}

func TestCarryStatuses_SkipsOnLengthMismatch(t *testing.T) {
	prev := carryFixture(42)
	prev.Activities[0].Status = models.StatusDone
	prev.Activities = prev.Activities[:1]

	next := carryFixture(42)
	CarryStatuses(prev, &next)

	if next.Activities[0].Status != models.StatusPending {
		t.Errorf("Expected statuses discarded on count mismatch, got %s", next.Activities[0].Status)
	}
}
