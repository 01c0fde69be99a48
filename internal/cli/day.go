package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"daygrid/internal/constants"
	"daygrid/internal/models"
	"daygrid/internal/utils"
)

type DayCmd struct {
	Date string `short:"d" help:"Target date (YYYY-MM-DD). Defaults to today."`
	Next bool   `short:"n" help:"Preview tomorrow instead of today."`
}

func (c *DayCmd) Validate() error {
	if c.Date != "" && c.Next {
		return fmt.Errorf("--date and --next are mutually exclusive")
	}
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	targetDate := c.Date
	if targetDate == "" {
		targetDate = now.Format(constants.DateFormat)
		if c.Next {
			targetDate = utils.DateOf(now).AddDate(0, 0, 1).Format(constants.DateFormat)
		}
	}

	sched, err := ctx.BuildSchedule(targetDate, now)
	if err != nil {
		return err
	}

	fmt.Println(RenderSchedule(sched))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#6C6C6C"))
)

// RenderSchedule renders a stored schedule as a plain timeline.
func RenderSchedule(sched models.Schedule) string {
	out := headerStyle.Render(fmt.Sprintf("Schedule for %s", sched.Date)) + "\n"
	if len(sched.Activities) == 0 {
		return out + "  (nothing scheduled)"
	}
	for _, a := range sched.Activities {
		out += "  " + RenderActivity(a) + "\n"
	}
	return out
}

// RenderActivity renders one timeline row.
func RenderActivity(a models.Activity) string {
	window := fmt.Sprintf("%s-%s",
		a.Start.Format(constants.TimeFormat),
		a.End.Format(constants.TimeFormat))

	title := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color)).Render(a.Title)
	if a.Status == models.StatusDone || a.Status == models.StatusSkipped {
		title = doneStyle.Render(a.Title)
	}

	row := fmt.Sprintf("%s  %s", timeStyle.Render(window), title)
	if a.Due != "" {
		row += timeStyle.Render(fmt.Sprintf("  [%s]", FormatDue(a.Due)))
	}
	if a.Status != models.StatusPending {
		row += fmt.Sprintf("  (%s)", a.Status)
	}
	return row
}
