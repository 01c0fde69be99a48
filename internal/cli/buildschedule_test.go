package cli

import (
	"path/filepath"
	"testing"
	"time"

	"daygrid/internal/constants"
	"daygrid/internal/engine"
	"daygrid/internal/feed"
	"daygrid/internal/models"
	"daygrid/internal/storage"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "daygrid.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	settings := models.DefaultSettings()
	settings.Timezone = "UTC"
	settings.BreakMin = 0
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	return &Context{Store: store, Engine: engine.New(), Feed: feed.NewClient()}
}

func TestBuildSchedule_LaysOutAndPersists(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()
	today := now.Format(constants.DateFormat)

	o := models.Obligation{
		ID: "o1", Title: "Email", DurationMin: 30, Repeats: 1,
		Recurrence: models.Recurrence{Kind: models.RecurrenceDaily},
		Placement:  models.PlacementMorning, Active: true, CreatedAt: now,
	}
	if err := ctx.Store.AddObligation(o); err != nil {
		t.Fatalf("AddObligation failed: %v", err)
	}
	it := models.Item{ID: "i1", Title: "Call bank", DurationMin: 15, Due: models.DueToday, CreatedAt: now}
	if err := ctx.Store.AddItem(it); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	sched, err := ctx.BuildSchedule(today, now)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	if sched.Date != today {
		t.Errorf("Expected date %s, got %s", today, sched.Date)
	}
	if len(sched.Activities) != 2 {
		t.Fatalf("Expected 2 activities, got %d", len(sched.Activities))
	}
	if sched.InputHash == 0 {
		t.Error("Expected a non-zero input hash")
	}

	stored, err := ctx.Store.GetSchedule(today)
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if len(stored.Activities) != len(sched.Activities) {
		t.Errorf("Stored schedule differs: %d vs %d activities", len(stored.Activities), len(sched.Activities))
	}
}

func TestBuildSchedule_CarriesStatusesAcrossRuns(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()
	today := now.Format(constants.DateFormat)

	it := models.Item{ID: "i1", Title: "Call bank", DurationMin: 15, Due: models.DueToday, CreatedAt: now}
	if err := ctx.Store.AddItem(it); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	first, err := ctx.BuildSchedule(today, now)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	first.Activities[0].Status = models.StatusDone
	if err := ctx.Store.SaveSchedule(first); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}

	second, err := ctx.BuildSchedule(today, now)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	if second.Activities[0].Status != models.StatusDone {
		t.Errorf("Expected done status carried across unchanged runs, got %s", second.Activities[0].Status)
	}
}

func TestBuildSchedule_DiscardsStatusesWhenInputsChange(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()
	today := now.Format(constants.DateFormat)

	it := models.Item{ID: "i1", Title: "Call bank", DurationMin: 15, Due: models.DueToday, CreatedAt: now}
	if err := ctx.Store.AddItem(it); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	first, err := ctx.BuildSchedule(today, now)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	first.Activities[0].Status = models.StatusDone
	if err := ctx.Store.SaveSchedule(first); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}

	other := models.Item{ID: "i2", Title: "Book dentist", DurationMin: 20, Due: models.DueToday, CreatedAt: now}
	if err := ctx.Store.AddItem(other); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	second, err := ctx.BuildSchedule(today, now)
	if err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}
	for _, a := range second.Activities {
		if a.Status != models.StatusPending {
			t.Errorf("Expected statuses discarded after input change, got %s on %q", a.Status, a.Title)
		}
	}
}

func TestBuildSchedule_RollsOverStaleItems(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()
	today := now.Format(constants.DateFormat)

	stale := models.Item{
		ID: "i1", Title: "Prep slides", DurationMin: 30,
		Due: models.DueTomorrow, CreatedAt: now.AddDate(0, 0, -2),
	}
	if err := ctx.Store.AddItem(stale); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if _, err := ctx.BuildSchedule(today, now); err != nil {
		t.Fatalf("BuildSchedule failed: %v", err)
	}

	got, err := ctx.Store.GetItem("i1")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got.Due != models.DueToday {
		t.Errorf("Expected stale tomorrow item rolled over to today, got %s", got.Due)
	}
}
