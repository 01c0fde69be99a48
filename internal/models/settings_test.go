package models

import "testing"

func TestDayConfigValidate(t *testing.T) {
	valid := DayConfig{Enabled: true, DayStart: "09:00", DayEnd: "17:00", BreakMin: 10}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	cases := []struct {
		name string
		cfg  DayConfig
	}{
		{"end before start", DayConfig{DayStart: "17:00", DayEnd: "09:00"}},
		{"end equals start", DayConfig{DayStart: "09:00", DayEnd: "09:00"}},
		{"malformed start", DayConfig{DayStart: "9am", DayEnd: "17:00"}},
		{"malformed end", DayConfig{DayStart: "09:00", DayEnd: "25:00"}},
		{"negative break", DayConfig{DayStart: "09:00", DayEnd: "17:00", BreakMin: -5}},
		{"bad timezone", DayConfig{DayStart: "09:00", DayEnd: "17:00", Timezone: "Mars/Olympus"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestDayConfigValidate_TimezoneVariants(t *testing.T) {
	base := DayConfig{Enabled: true, DayStart: "08:00", DayEnd: "16:00"}

	base.Timezone = ""
	if err := base.Validate(); err != nil {
		t.Errorf("Empty timezone should be valid, got %v", err)
	}
	base.Timezone = "Local"
	if err := base.Validate(); err != nil {
		t.Errorf("Local timezone should be valid, got %v", err)
	}
	base.Timezone = "Europe/Berlin"
	if err := base.Validate(); err != nil {
		t.Errorf("IANA timezone should be valid, got %v", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.Enabled {
		t.Error("Defaults should be enabled")
	}
	if err := s.DayConfig().Validate(); err != nil {
		t.Errorf("Default settings should produce a valid day config, got %v", err)
	}
}
