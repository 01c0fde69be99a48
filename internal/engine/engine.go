package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"daygrid/internal/constants"
	"daygrid/internal/models"
	"daygrid/internal/utils"
)

// Engine lays out a single day as a non-overlapping timeline. It holds
// no state; every invocation allocates its own cursor and output.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Layout produces the day plan for targetDate (YYYY-MM-DD). The engine
// never mutates its inputs and never touches the clock: "now" is
// injected so that the due-window predicates are testable and two runs
// with identical inputs produce identical layouts.
func (e *Engine) Layout(
	obligations []models.Obligation,
	items []models.Item,
	blocks []models.ExternalBlock,
	cfg models.DayConfig,
	targetDate string,
	now time.Time,
) ([]models.Activity, error) {
	if !cfg.Enabled {
		return []models.Activity{}, nil
	}

	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	day, err := utils.ParseDateInLocation(targetDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}
	dayStart, err := utils.ParseTimeToMinutes(cfg.DayStart)
	if err != nil {
		return nil, fmt.Errorf("invalid day start time: %w", err)
	}
	dayEnd, err := utils.ParseTimeToMinutes(cfg.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid day end time: %w", err)
	}
	today := utils.DateOf(now.In(loc))

	// Calendar events pass through with their original, unclamped times
	// regardless of what else happens. During placement they act only as
	// exclusion zones; the final sort interleaves them.
	calendar := calendarActivities(blocks, day)

	if dayEnd <= dayStart {
		// Zero-width work window: place nothing.
		sortActivities(calendar)
		return calendar, nil
	}

	// Eligibility filtering.
	var spread, morning, midday, afternoon, nopref []models.Obligation
	for _, o := range obligations {
		if !o.Active || !recurrenceMatches(o.Recurrence, day) {
			continue
		}
		switch {
		case o.Spread():
			spread = append(spread, o)
		case o.Placement == models.PlacementMorning:
			morning = append(morning, o)
		case o.Placement == models.PlacementMidday:
			midday = append(midday, o)
		case o.Placement == models.PlacementAfternoon:
			afternoon = append(afternoon, o)
		default:
			nopref = append(nopref, o)
		}
	}

	var eligible []models.Item
	for _, it := range items {
		if it.Done || !dueIncludes(it.Due, day, today) {
			continue
		}
		eligible = append(eligible, it)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Due.Urgency() != eligible[j].Due.Urgency() {
			return eligible[i].Due.Urgency() < eligible[j].Due.Urgency()
		}
		return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
	})

	p := &placer{
		day:      day,
		dayStart: dayStart,
		dayEnd:   dayEnd,
		breakMin: cfg.BreakMin,
		zones:    exclusionZones(blocks, day, dayStart, dayEnd),
		slots:    spreadSlots(spread, dayStart, dayEnd),
		cursor:   dayStart,
	}

	span := dayEnd - dayStart
	middayAt := dayStart + span/3
	afternoonAt := dayStart + 2*span/3

	// Fixed bucket order: morning obligations, today-tagged items while
	// the cursor is still in the morning third, gap-fill, midday,
	// gap-fill, afternoon, leftover no-preference, remaining items by
	// urgency, leftover spread slots.
	for _, o := range morning {
		p.placeObligation(o)
	}

	used := make([]bool, len(eligible))
	for i, it := range eligible {
		if it.Due != models.DueToday {
			continue
		}
		if p.cursor >= middayAt {
			break
		}
		p.placeItem(it)
		used[i] = true
	}

	noprefIdx := 0
	for noprefIdx < len(nopref) && p.cursor < middayAt {
		p.placeObligation(nopref[noprefIdx])
		noprefIdx++
	}

	for _, o := range midday {
		p.placeObligation(o)
	}

	for noprefIdx < len(nopref) && p.cursor < afternoonAt {
		p.placeObligation(nopref[noprefIdx])
		noprefIdx++
	}

	for _, o := range afternoon {
		p.placeObligation(o)
	}

	for ; noprefIdx < len(nopref); noprefIdx++ {
		p.placeObligation(nopref[noprefIdx])
	}

	for i, it := range eligible {
		if !used[i] {
			p.placeItem(it)
		}
	}

	p.flushRemainingSlots()

	out := append(p.out, calendar...)
	sortActivities(out)
	return out, nil
}

// zone is a calendar block clamped to the work window, in minutes from
// midnight.
type zone struct {
	start, end int
}

type spreadSlot struct {
	target     int
	obligation models.Obligation
	title      string
}

type placer struct {
	day      time.Time
	dayStart int
	dayEnd   int
	breakMin int
	zones    []zone
	slots    []spreadSlot
	cursor   int
	out      []models.Activity
}

func (p *placer) at(minutes int) time.Time {
	return p.day.Add(time.Duration(minutes) * time.Minute)
}

func (p *placer) placeObligation(o models.Obligation) bool {
	p.flushDueSlots()
	return p.place(models.SourceObligation, o.ID, o.Title, o.DurationMin, "")
}

func (p *placer) placeItem(it models.Item) bool {
	p.flushDueSlots()
	return p.place(models.SourceItem, it.ID, it.Title, it.DurationMin, it.Due)
}

// flushDueSlots places every spread slot whose target instant has
// arrived or is imminent, in ascending target order. A slot is imminent
// when the next candidate activity would land past it, approximated
// with a fixed lookahead.
func (p *placer) flushDueSlots() {
	for len(p.slots) > 0 {
		s := p.slots[0]
		if s.target >= p.cursor+constants.SpreadLookaheadMin {
			break
		}
		p.slots = p.slots[1:]
		p.placeSlot(s)
	}
}

func (p *placer) flushRemainingSlots() {
	for len(p.slots) > 0 {
		s := p.slots[0]
		p.slots = p.slots[1:]
		p.placeSlot(s)
	}
}

func (p *placer) placeSlot(s spreadSlot) bool {
	if p.cursor < s.target {
		p.cursor = s.target
	}
	return p.place(models.SourceObligation, s.obligation.ID, s.title, s.obligation.DurationMin, "")
}

func (p *placer) place(src models.ActivitySource, srcID, title string, durationMin int, due models.DueWindow) bool {
	p.skipZones(durationMin)
	if p.cursor >= p.dayEnd {
		// Out of day: omitted entirely, never placed zero-length.
		return false
	}

	granted := durationMin
	if p.cursor+granted > p.dayEnd {
		granted = p.dayEnd - p.cursor
	}

	p.out = append(p.out, models.Activity{
		ID:          uuid.New().String(),
		Source:      src,
		SourceID:    srcID,
		Title:       title,
		Start:       p.at(p.cursor),
		End:         p.at(p.cursor + granted),
		DurationMin: granted,
		Due:         due,
		Status:      models.StatusPending,
		Color:       colorFor(src),
	})
	p.cursor += granted
	p.insertBreak()
	return true
}

// skipZones advances the cursor to a position where an activity of the
// given duration can start without crossing a calendar block. A
// non-break activity never crosses a block start: if it does not fit
// the gap, or the gap is under the minimum usable width, the cursor
// jumps to the block end.
func (p *placer) skipZones(durationMin int) {
	for p.cursor < p.dayEnd {
		inside := false
		for _, z := range p.zones {
			if p.cursor >= z.start && p.cursor < z.end {
				p.cursor = z.end
				inside = true
				break
			}
		}
		if inside {
			continue
		}

		next, ok := p.nextZone()
		if !ok {
			return
		}
		end := p.cursor + durationMin
		if end > p.dayEnd {
			end = p.dayEnd
		}
		if next.start-p.cursor < constants.MinPreBlockGapMin || end > next.start {
			p.cursor = next.end
			continue
		}
		return
	}
}

func (p *placer) nextZone() (zone, bool) {
	for _, z := range p.zones {
		if z.start >= p.cursor {
			return z, true
		}
	}
	return zone{}, false
}

// insertBreak appends a rest break after a placed activity. Breaks are
// suppressed when they would run past the end of the day or overlap the
// next calendar block.
func (p *placer) insertBreak() {
	if p.breakMin <= 0 {
		return
	}
	end := p.cursor + p.breakMin
	if end > p.dayEnd {
		return
	}
	if next, ok := p.nextZone(); ok && next.start < end {
		return
	}
	p.out = append(p.out, models.Activity{
		ID:          uuid.New().String(),
		Source:      models.SourceBreak,
		Title:       "Break",
		Start:       p.at(p.cursor),
		End:         p.at(end),
		DurationMin: p.breakMin,
		Status:      models.StatusPending,
		Color:       constants.ColorBreak,
	})
	p.cursor = end
}

// exclusionZones converts the non-all-day blocks overlapping the target
// day into sorted, merged minute ranges clamped to the work window.
// All-day blocks consume no working-hour time.
func exclusionZones(blocks []models.ExternalBlock, day time.Time, dayStart, dayEnd int) []zone {
	var zones []zone
	for _, b := range blocks {
		if b.AllDay || !b.OverlapsDay(day) {
			continue
		}
		start := int(b.Start.Sub(day).Minutes())
		end := int(b.End.Sub(day).Minutes())
		if start < dayStart {
			start = dayStart
		}
		if end > dayEnd {
			end = dayEnd
		}
		if end <= start {
			continue
		}
		zones = append(zones, zone{start: start, end: end})
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].start < zones[j].start })

	// Merge overlapping or touching zones.
	var merged []zone
	for _, z := range zones {
		if n := len(merged); n > 0 && z.start <= merged[n-1].end {
			if z.end > merged[n-1].end {
				merged[n-1].end = z.end
			}
			continue
		}
		merged = append(merged, z)
	}
	return merged
}

func calendarActivities(blocks []models.ExternalBlock, day time.Time) []models.Activity {
	var out []models.Activity
	for _, b := range blocks {
		if !b.OverlapsDay(day) {
			continue
		}
		out = append(out, models.Activity{
			ID:          uuid.New().String(),
			Source:      models.SourceCalendar,
			SourceID:    b.ID,
			Title:       b.Title,
			Start:       b.Start,
			End:         b.End,
			DurationMin: int(b.End.Sub(b.Start).Minutes()),
			Status:      models.StatusPending,
			Color:       constants.ColorCalendar,
		})
	}
	return out
}

func sortActivities(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Start.Before(activities[j].Start)
	})
}

func colorFor(src models.ActivitySource) string {
	switch src {
	case models.SourceObligation:
		return constants.ColorObligation
	case models.SourceItem:
		return constants.ColorItem
	case models.SourceCalendar:
		return constants.ColorCalendar
	default:
		return constants.ColorBreak
	}
}
