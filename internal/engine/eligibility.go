package engine

import (
	"time"

	"daygrid/internal/models"
	"daygrid/internal/utils"
)

// recurrenceMatches reports whether an obligation recurs on the given
// date. Daily rules match every day unless a weekday mask narrows them;
// weekly rules match only their mask; monthly rules match a single day
// of the month (day 31 simply never fires in shorter months).
func recurrenceMatches(rec models.Recurrence, date time.Time) bool {
	switch rec.Kind {
	case models.RecurrenceDaily:
		if len(rec.Weekdays) == 0 {
			return true
		}
		return containsWeekday(rec.Weekdays, date.Weekday())
	case models.RecurrenceWeekly:
		return containsWeekday(rec.Weekdays, date.Weekday())
	case models.RecurrenceMonthly:
		return date.Day() == rec.MonthDay
	default:
		return false
	}
}

func containsWeekday(weekdays []time.Weekday, wd time.Weekday) bool {
	for _, w := range weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

// dueIncludes resolves a due window against the target date. Week
// windows are ISO weeks (Monday start) anchored to *today*, not to the
// target date, so a next-week item shows up when previewing next week's
// days but not further out. "Tomorrow" items are eligible once the
// target is today or later; the rollover step separately rewrites their
// tag.
func dueIncludes(due models.DueWindow, target, today time.Time) bool {
	switch due {
	case models.DueToday:
		return utils.SameDay(target, today)
	case models.DueTomorrow:
		return !target.Before(today)
	case models.DueThisWeek:
		ws := utils.WeekStart(today)
		return !target.Before(ws) && target.Before(ws.AddDate(0, 0, 7))
	case models.DueNextWeek:
		ws := utils.WeekStart(today).AddDate(0, 0, 7)
		return !target.Before(ws) && target.Before(ws.AddDate(0, 0, 7))
	case models.DueThisMonth:
		return target.Year() == today.Year() && target.Month() == today.Month()
	case models.DueSomeday:
		return true
	default:
		return false
	}
}
