// Package pricing derives the running total for a wizard selection.
//
// The total is never stored: callers recompute it from the current selection
// on every change. The item count is tens at most, and a from-scratch sum is
// trivially correct under any add/remove sequence.
package pricing

import "studiorental/internal/domain"

// Total sums the applicable prices for everything in the selection, in whole
// currency units.
//
// Spaces and equipment follow the booking mode: per-day price under FullDay,
// per-hour price times the selected hour count under Hourly. Props always
// charge their daily rate; they are not time-metered. Unavailable items still
// price — availability is advisory here and enforced at confirmation time by
// the collaborator that records the booking.
func Total(sel *domain.Selection, cat *domain.Catalog) int64 {
	var total int64
	hours := int64(sel.HourCount())

	for _, id := range sel.SpaceIDs {
		sp, ok := cat.Space(id)
		if !ok {
			continue
		}
		if sel.Mode == domain.ModeFullDay {
			total += sp.PricePerDay
		} else {
			total += sp.PricePerHour * hours
		}
	}

	for _, id := range sel.EquipmentIDs {
		eq, ok := cat.EquipmentItem(id)
		if !ok {
			continue
		}
		if sel.Mode == domain.ModeFullDay {
			total += eq.PricePerDay
		} else {
			total += eq.PricePerHour * hours
		}
	}

	for _, id := range sel.PropIDs {
		pr, ok := cat.Prop(id)
		if !ok {
			continue
		}
		total += pr.PricePerDay
	}

	return total
}
