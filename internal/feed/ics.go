package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apognu/gocal"

	"daygrid/internal/models"
)

// Parse reads an iCalendar stream and returns the VEVENTs between from
// and to as external blocks. gocal owns the ICS grammar (line
// unfolding, property parameters, recurrence expansion); start and end
// are re-resolved here from the raw property values so floating times
// land in the planner's configured timezone rather than the
// process-local one. Events without a parseable DTSTART are dropped; a
// missing DTEND falls back to the start (or the next day for all-day
// events), matching how most feeds encode instantaneous and single-day
// entries.
func Parse(r io.Reader, loc *time.Location, from, to time.Time) ([]models.ExternalBlock, error) {
	c := gocal.NewParser(r)
	c.Start, c.End = &from, &to
	c.Strict = gocal.StrictParams{Mode: gocal.StrictModeFailEvent}
	if err := c.Parse(); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var blocks []models.ExternalBlock
	for _, e := range c.Events {
		if b, ok := toBlock(e, loc); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

func toBlock(e gocal.Event, loc *time.Location) (models.ExternalBlock, bool) {
	start, allDay, err := resolveTime(e.RawStart, loc)
	if err != nil {
		return models.ExternalBlock{}, false
	}

	var end time.Time
	if e.RawEnd.Value != "" {
		if t, _, err := resolveTime(e.RawEnd, loc); err == nil {
			end = t
		}
	}
	if end.IsZero() || !end.After(start) {
		if allDay {
			end = start.AddDate(0, 0, 1)
		} else {
			end = start
		}
	}

	return models.ExternalBlock{
		ID:       e.Uid,
		Title:    unescape(e.Summary),
		Start:    start,
		End:      end,
		AllDay:   allDay,
		Location: unescape(e.Location),
	}, true
}

// resolveTime handles the three DTSTART/DTEND shapes feeds actually
// emit: UTC date-times (trailing Z), floating or TZID-qualified local
// date-times, and bare dates (VALUE=DATE), which mark all-day events.
func resolveTime(raw gocal.RawDate, loc *time.Location) (time.Time, bool, error) {
	value := raw.Value
	if raw.Params["VALUE"] == "DATE" || (len(value) == 8 && !strings.Contains(value, "T")) {
		t, err := time.ParseInLocation("20060102", value, loc)
		return t, true, err
	}

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse("20060102T150405Z", value)
		return t, false, err
	}

	eventLoc := loc
	if tzid := raw.Params["TZID"]; tzid != "" {
		if l, err := time.LoadLocation(tzid); err == nil {
			eventLoc = l
		}
	}
	t, err := time.ParseInLocation("20060102T150405", value, eventLoc)
	return t, false, err
}

func unescape(s string) string {
	replacer := strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)
	return replacer.Replace(s)
}
