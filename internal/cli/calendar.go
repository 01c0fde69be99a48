package cli

import (
	"context"
	"fmt"
	"time"

	"daygrid/internal/constants"
	"daygrid/internal/keyring"
	"daygrid/internal/utils"
)

type CalendarSetURLCmd struct {
	URL string `arg:"" help:"iCalendar feed URL."`
}

func (c *CalendarSetURLCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.FeedURL = c.URL
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Calendar feed URL saved.")
	return nil
}

type CalendarSetTokenCmd struct {
	Token string `arg:"" help:"Bearer token for the feed."`
}

func (c *CalendarSetTokenCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available on this system")
	}
	if err := keyring.SetFeedToken(c.Token); err != nil {
		return err
	}
	fmt.Println("Feed token stored in OS keyring.")
	return nil
}

type CalendarClearTokenCmd struct{}

func (c *CalendarClearTokenCmd) Run(ctx *Context) error {
	if err := keyring.DeleteFeedToken(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No feed token stored.")
			return nil
		}
		return err
	}
	fmt.Println("Feed token removed from OS keyring.")
	return nil
}

type CalendarSyncCmd struct {
	Date string `short:"d" help:"Show events for this date (YYYY-MM-DD). Defaults to today."`
}

func (c *CalendarSyncCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if settings.FeedURL == "" {
		return fmt.Errorf("no feed URL configured, run 'daygrid calendar set-url' first")
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	token, err := keyring.GetFeedToken()
	if err != nil && err != keyring.ErrNotFound {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().In(loc).Format(constants.DateFormat)
	}
	day, err := utils.ParseDateInLocation(date, loc)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	blocks, err := ctx.Feed.Fetch(reqCtx, settings.FeedURL, token, loc, day.AddDate(0, 0, -1), day.AddDate(0, 0, 2))
	if err != nil {
		return err
	}

	fmt.Printf("Events on %s:\n", date)
	count := 0
	for _, b := range blocks {
		if !b.OverlapsDay(day) {
			continue
		}
		count++
		if b.AllDay {
			fmt.Printf("  all day     %s\n", b.Title)
			continue
		}
		fmt.Printf("  %s-%s  %s\n",
			b.Start.In(loc).Format(constants.TimeFormat),
			b.End.In(loc).Format(constants.TimeFormat),
			b.Title)
	}
	if count == 0 {
		fmt.Println("  (none)")
	}
	return nil
}
