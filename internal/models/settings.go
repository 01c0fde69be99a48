package models

import (
	"fmt"
	"time"

	"daygrid/internal/constants"
)

// DayConfig describes the work window the engine lays activities into.
type DayConfig struct {
	Enabled  bool   `json:"enabled"`
	DayStart string `json:"day_start"` // HH:MM
	DayEnd   string `json:"day_end"`   // HH:MM
	BreakMin int    `json:"break_min"`
	Timezone string `json:"timezone,omitempty"`
}

// Validate rejects malformed configurations at the construction
// boundary. The engine itself treats a bad window as empty rather than
// failing, so this is the only place an end-before-start config can be
// caught.
func (c DayConfig) Validate() error {
	start, err := time.Parse(constants.TimeFormat, c.DayStart)
	if err != nil {
		return fmt.Errorf("invalid day start time %q: %w", c.DayStart, err)
	}
	end, err := time.Parse(constants.TimeFormat, c.DayEnd)
	if err != nil {
		return fmt.Errorf("invalid day end time %q: %w", c.DayEnd, err)
	}
	if !end.After(start) {
		return fmt.Errorf("day end %s must be after day start %s", c.DayEnd, c.DayStart)
	}
	if c.BreakMin < 0 {
		return fmt.Errorf("break duration cannot be negative")
	}
	if c.Timezone != "" && c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	return nil
}

// Settings is the persisted application configuration.
type Settings struct {
	Enabled  bool   `json:"enabled"`
	DayStart string `json:"day_start"`
	DayEnd   string `json:"day_end"`
	BreakMin int    `json:"break_min"`
	Timezone string `json:"timezone,omitempty"`
	FeedURL  string `json:"feed_url,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Enabled:  true,
		DayStart: constants.DefaultDayStart,
		DayEnd:   constants.DefaultDayEnd,
		BreakMin: constants.DefaultBreakMin,
		Timezone: "Local",
	}
}

func (s Settings) DayConfig() DayConfig {
	return DayConfig{
		Enabled:  s.Enabled,
		DayStart: s.DayStart,
		DayEnd:   s.DayEnd,
		BreakMin: s.BreakMin,
		Timezone: s.Timezone,
	}
}
