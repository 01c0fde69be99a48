package cli

import "fmt"

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Printf("enabled:   %v\n", settings.Enabled)
	fmt.Printf("day start: %s\n", settings.DayStart)
	fmt.Printf("day end:   %s\n", settings.DayEnd)
	fmt.Printf("break:     %d min\n", settings.BreakMin)
	fmt.Printf("timezone:  %s\n", settings.Timezone)
	if settings.FeedURL != "" {
		fmt.Printf("feed:      %s\n", settings.FeedURL)
	}
	return nil
}

type ConfigSetCmd struct {
	DayStart string `help:"Start of the work day (HH:MM)."`
	DayEnd   string `help:"End of the work day (HH:MM)."`
	Break    int    `help:"Break duration in minutes." default:"-1"`
	Enabled  string `help:"Enable or disable day layout (true|false)."`
	Timezone string `help:"IANA timezone name, or 'Local'."`
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.DayStart != "" {
		settings.DayStart = c.DayStart
	}
	if c.DayEnd != "" {
		settings.DayEnd = c.DayEnd
	}
	if c.Break >= 0 {
		settings.BreakMin = c.Break
	}
	if c.Enabled != "" {
		settings.Enabled = c.Enabled == "true"
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}

	// Malformed windows are rejected here, at the construction boundary.
	// The engine itself degrades silently, so this is the user's only
	// chance to hear about an end-before-start window.
	if err := settings.DayConfig().Validate(); err != nil {
		return fmt.Errorf("invalid day configuration: %w", err)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Configuration updated.")
	return nil
}
