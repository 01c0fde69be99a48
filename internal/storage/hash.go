package storage

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"daygrid/internal/models"
)

// layoutInputs is the full set of values the engine's output depends
// on, bundled for hashing. The reference date matters because the
// due-window predicates resolve relative to "today".
type layoutInputs struct {
	Obligations []models.Obligation
	Items       []models.Item
	Blocks      []models.ExternalBlock
	Config      models.DayConfig
	TargetDate  string
	Today       string
}

// HashLayoutInputs produces a deterministic hash of everything a layout
// run depends on. Callers compare it against the stored schedule's hash
// to decide whether manually applied statuses can be carried forward:
// if the inputs changed, the old statuses no longer line up with the
// new placements and are discarded.
func HashLayoutInputs(
	obligations []models.Obligation,
	items []models.Item,
	blocks []models.ExternalBlock,
	cfg models.DayConfig,
	targetDate, today string,
) (uint64, error) {
	h, err := hashstructure.Hash(layoutInputs{
		Obligations: obligations,
		Items:       items,
		Blocks:      blocks,
		Config:      cfg,
		TargetDate:  targetDate,
		Today:       today,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to hash layout inputs: %w", err)
	}
	return h, nil
}

// CarryStatuses copies status and actual-time fields from a previously
// stored schedule into a freshly generated one. It only applies when
// the input hashes match: identical inputs yield layouts identical in
// count, order, titles and timestamps, so entries align by index. The
// fresh activity IDs are kept; IDs are opaque and never compared.
func CarryStatuses(prev models.Schedule, next *models.Schedule) {
	if prev.InputHash != next.InputHash {
		return
	}
	if len(prev.Activities) != len(next.Activities) {
		return
	}
	for i := range next.Activities {
		old := prev.Activities[i]
		if old.Source != next.Activities[i].Source || old.SourceID != next.Activities[i].SourceID {
			continue
		}
		next.Activities[i].Status = old.Status
		next.Activities[i].ActualStart = old.ActualStart
		next.Activities[i].ActualEnd = old.ActualEnd
		if old.Status == models.StatusOverran {
			// An extended window survives re-layout of unchanged inputs.
			next.Activities[i].End = old.End
			next.Activities[i].DurationMin = old.DurationMin
		}
	}
}
