package engine

import (
	"fmt"
	"sort"

	"daygrid/internal/models"
)

// spreadSlots computes evenly spaced target instants for every spread
// obligation across the full work window and merges them into one
// ascending sequence. For an obligation repeated N times, slot i lands
// at start + (span/N)*i + (span/N)/2, which centers each instance in
// its own Nth of the day.
func spreadSlots(obligations []models.Obligation, dayStart, dayEnd int) []spreadSlot {
	span := dayEnd - dayStart
	var slots []spreadSlot
	for _, o := range obligations {
		n := o.Repeats
		if n < 1 {
			n = 1
		}
		step := span / n
		for i := 0; i < n; i++ {
			title := o.Title
			if n > 1 {
				title = fmt.Sprintf("%s (%d/%d)", o.Title, i+1, n)
			}
			slots = append(slots, spreadSlot{
				target:     dayStart + step*i + step/2,
				obligation: o,
				title:      title,
			})
		}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].target < slots[j].target })
	return slots
}
