package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"daygrid/internal/constants"
	"daygrid/internal/engine"
	"daygrid/internal/feed"
	"daygrid/internal/keyring"
	"daygrid/internal/logger"
	"daygrid/internal/models"
	"daygrid/internal/storage"
	"daygrid/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
	Feed   *feed.Client
}

// BuildSchedule runs the full pipeline for one date: rollover, feed
// fetch, layout, status carry-over and save. The engine itself stays
// pure; everything stateful happens here, on the caller's side of the
// boundary.
func (c *Context) BuildSchedule(targetDate string, now time.Time) (models.Schedule, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Schedule{}, err
	}
	cfg := settings.DayConfig()

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return models.Schedule{}, err
	}
	now = now.In(loc)

	items, err := c.Store.GetAllItems(false)
	if err != nil {
		return models.Schedule{}, err
	}

	// Promote stale due-window tags before layout so listings and
	// placement agree on urgency.
	if changed := engine.Rollover(items, now); len(changed) > 0 {
		for _, it := range changed {
			if err := c.Store.UpdateItem(it); err != nil {
				logger.Warn("Failed to persist rollover", "item", it.ID, "error", err)
			}
		}
		if items, err = c.Store.GetAllItems(false); err != nil {
			return models.Schedule{}, err
		}
	}

	obligations, err := c.Store.GetAllObligations()
	if err != nil {
		return models.Schedule{}, err
	}

	blocks := c.fetchBlocks(settings, targetDate, loc)

	today := utils.DateOf(now).Format(constants.DateFormat)
	hash, err := storage.HashLayoutInputs(obligations, items, blocks, cfg, targetDate, today)
	if err != nil {
		return models.Schedule{}, err
	}

	activities, err := c.Engine.Layout(obligations, items, blocks, cfg, targetDate, now)
	if err != nil {
		return models.Schedule{}, err
	}

	sched := models.Schedule{
		Date:        targetDate,
		InputHash:   hash,
		Activities:  activities,
		GeneratedAt: now,
	}

	// Carry manually applied statuses forward only when the inputs are
	// unchanged; otherwise the old statuses no longer line up.
	if prev, err := c.Store.GetSchedule(targetDate); err == nil {
		storage.CarryStatuses(prev, &sched)
	}

	if err := c.Store.SaveSchedule(sched); err != nil {
		return sched, err
	}
	return sched, nil
}

// fetchBlocks pulls the calendar feed for the target day. Any failure
// degrades to an empty block list; the engine's contract is unaffected.
func (c *Context) fetchBlocks(settings models.Settings, targetDate string, loc *time.Location) []models.ExternalBlock {
	if settings.FeedURL == "" {
		return nil
	}
	token, err := keyring.GetFeedToken()
	if err != nil && err != keyring.ErrNotFound {
		logger.Warn("Calendar feed token unavailable", "error", err)
	}

	day, err := utils.ParseDateInLocation(targetDate, loc)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	// Fetch a small window around the day so midnight-spanning events
	// survive the feed-side range filter.
	fetched, err := c.Feed.Fetch(ctx, settings.FeedURL, token, loc, day.AddDate(0, 0, -1), day.AddDate(0, 0, 2))
	if err != nil {
		logger.Warn("Calendar feed unavailable", "error", err)
		return nil
	}
	return feed.ForDay(fetched, day)
}

// Today returns the current date string in the configured timezone.
func (c *Context) Today() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", err
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday
	for _, part := range parts {
		wd, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

// ParseWeekday parses a single weekday name or number (0=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}
	key := strings.TrimSpace(strings.ToLower(s))
	if wd, ok := dayMap[key]; ok {
		return wd, nil
	}
	if num, err := strconv.Atoi(key); err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

// FormatRecurrence formats a recurrence rule into a human-readable string
func FormatRecurrence(rec models.Recurrence) string {
	switch rec.Kind {
	case models.RecurrenceDaily:
		if len(rec.Weekdays) > 0 {
			return fmt.Sprintf("daily on %s", joinWeekdays(rec.Weekdays))
		}
		return "daily"
	case models.RecurrenceWeekly:
		return fmt.Sprintf("weekly on %s", joinWeekdays(rec.Weekdays))
	case models.RecurrenceMonthly:
		return fmt.Sprintf("monthly on day %d", rec.MonthDay)
	default:
		return "unknown"
	}
}

// FormatDue formats a due window for display.
func FormatDue(due models.DueWindow) string {
	return strings.ReplaceAll(string(due), "_", " ")
}

// ParseDue parses a due window from user input.
func ParseDue(s string) (models.DueWindow, error) {
	key := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), "-", "_")
	due := models.DueWindow(key)
	if !due.Valid() {
		return "", fmt.Errorf("invalid due window: %s (expected today|tomorrow|this-week|next-week|this-month|someday)", s)
	}
	return due, nil
}

func joinWeekdays(weekdays []time.Weekday) string {
	var days []string
	for _, wd := range weekdays {
		days = append(days, wd.String()[:3])
	}
	return strings.Join(days, ",")
}
