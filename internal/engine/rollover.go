package engine

import (
	"time"

	"daygrid/internal/models"
	"daygrid/internal/utils"
)

// Rollover promotes due-window tags whose window has caught up with the
// calendar, so listings stay truthful between layout runs. It returns
// only the items whose tag changed; callers persist those. Rules:
//
//   - tomorrow  -> today      once at least one day has passed since creation
//   - this-week -> today      once the tagged week is over
//   - next-week -> this-week  once the week after creation has begun
//   - this-month -> today     once the tagged month is over
//
// Completed items are never touched.
func Rollover(items []models.Item, now time.Time) []models.Item {
	today := utils.DateOf(now)
	var changed []models.Item
	for _, it := range items {
		if it.Done {
			continue
		}
		created := utils.DateOf(it.CreatedAt.In(now.Location()))
		next := it.Due
		switch it.Due {
		case models.DueTomorrow:
			if today.After(created) {
				next = models.DueToday
			}
		case models.DueThisWeek:
			if utils.WeekStart(today).After(utils.WeekStart(created)) {
				next = models.DueToday
			}
		case models.DueNextWeek:
			if !utils.WeekStart(today).Before(utils.WeekStart(created).AddDate(0, 0, 7)) {
				next = models.DueThisWeek
			}
		case models.DueThisMonth:
			if today.Year() > created.Year() ||
				(today.Year() == created.Year() && today.Month() > created.Month()) {
				next = models.DueToday
			}
		}
		if next != it.Due {
			it.Due = next
			changed = append(changed, it)
		}
	}
	return changed
}
