package availability

import (
	"sort"
	"time"

	"fieldbook/models"
)

// Engine computes bookable time slots from a worker's recurring rules,
// blocked periods, and committed bookings. It is a pure computation: no
// I/O, no mutation of its inputs, and deterministic output for identical
// inputs. A single Engine value is safe for concurrent use.
type Engine struct{}

// NewEngine returns the slot computation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// GenerateAvailableSlots runs the full pipeline: expand rules into hourly
// candidates over [from, to] (inclusive calendar dates), build conflict
// intervals from bookings and blocks, drop candidates that overlap any
// conflict, and merge the survivors into runs of durationHours.
//
// Degenerate inputs (inverted range, no rules, zero candidates) yield an
// empty, non-nil slice. The engine never fails.
func (e *Engine) GenerateAvailableSlots(
	rules []models.AvailabilityRule,
	blocks []models.Unavailability,
	bookings []models.Booking,
	from, to time.Time,
	durationHours int,
) []models.TimeSlot {
	candidates := e.ExpandRules(rules, from, to)
	conflicts := e.BuildConflicts(bookings, blocks)
	free := e.FilterSlots(candidates, conflicts)
	return e.AggregateSlots(free, durationHours)
}

// ExpandRules produces one 1-hour candidate slot per hour, per day, per
// applicable rule over the inclusive date range [from, to]. A rule applies
// to a day when the weekday matches and the day falls inside the rule's
// validity window. Structurally invalid rules are skipped so one
// misconfigured rule cannot poison the whole computation. Overlapping
// rules may emit duplicate candidates here; AggregateSlots deduplicates.
func (e *Engine) ExpandRules(rules []models.AvailabilityRule, from, to time.Time) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0)

	start := dateOnly(from)
	end := dateOnly(to)
	if end.Before(start) {
		return slots
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, rule := range rules {
			if !rule.Valid() {
				continue
			}
			if !rule.AppliesTo(day) {
				continue
			}
			for h := rule.StartHour; h < rule.EndHour; h++ {
				slots = append(slots, models.TimeSlot{
					Date:          day,
					StartHour:     h,
					EndHour:       h + 1,
					DurationHours: 1,
					Available:     true,
				})
			}
		}
	}
	return slots
}

// BuildConflicts flattens bookings and blocked periods into conflict
// intervals. A booking contributes only when it blocks (confirmed OR paid);
// every unavailability contributes unconditionally. Records whose end does
// not follow their start are excluded as malformed. No range filtering
// happens here: conflicts outside the requested window simply never match.
func (e *Engine) BuildConflicts(bookings []models.Booking, blocks []models.Unavailability) []models.ConflictInterval {
	conflicts := make([]models.ConflictInterval, 0, len(bookings)+len(blocks))

	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		if !b.EndAt.After(b.StartAt) {
			continue
		}
		conflicts = append(conflicts, models.ConflictInterval{
			Kind:     models.ConflictKindBooking,
			Start:    b.StartAt,
			End:      b.EndAt,
			SourceID: b.ID,
		})
	}

	for _, u := range blocks {
		if !u.EndAt.After(u.StartAt) {
			continue
		}
		conflicts = append(conflicts, models.ConflictInterval{
			Kind:     models.ConflictKindUnavailability,
			Start:    u.StartAt,
			End:      u.EndAt,
			SourceID: u.ID,
		})
	}

	return conflicts
}

// FilterSlots keeps the candidates whose absolute interval overlaps no
// conflict. The pairwise scan is O(slots x conflicts), which is fine at
// the scale of one worker's schedule over a capped window.
func (e *Engine) FilterSlots(slots []models.TimeSlot, conflicts []models.ConflictInterval) []models.TimeSlot {
	kept := make([]models.TimeSlot, 0, len(slots))

	for _, slot := range slots {
		start, end := slot.StartAt(), slot.EndAt()
		blocked := false
		for _, c := range conflicts {
			if c.Overlaps(start, end) {
				blocked = true
				break
			}
		}
		if !blocked {
			kept = append(kept, slot)
		}
	}
	return kept
}

// AggregateSlots merges contiguous surviving 1-hour slots into slots of
// exactly durationHours, one per valid starting hour (a 2-hour service
// over free hours 9,10,11 offers both 9-11 and 10-12). Candidates are
// first deduplicated by (date, start hour) so overlapping rules cannot
// inflate the output, then sorted by date and start hour, which also fixes
// the output order.
func (e *Engine) AggregateSlots(slots []models.TimeSlot, durationHours int) []models.TimeSlot {
	if durationHours < 1 {
		durationHours = 1
	}

	hourly := dedupeHourly(slots)
	sort.Slice(hourly, func(i, j int) bool {
		if !hourly[i].Date.Equal(hourly[j].Date) {
			return hourly[i].Date.Before(hourly[j].Date)
		}
		return hourly[i].StartHour < hourly[j].StartHour
	})

	if durationHours == 1 {
		return hourly
	}

	aggregated := make([]models.TimeSlot, 0)
	for i := 0; i < len(hourly); i++ {
		run := 1
		for k := i; k+1 < len(hourly) && run < durationHours; k++ {
			next := hourly[k+1]
			if !next.Date.Equal(hourly[k].Date) || next.StartHour != hourly[k].EndHour {
				break
			}
			run++
		}
		if run < durationHours {
			continue
		}
		aggregated = append(aggregated, models.TimeSlot{
			Date:          hourly[i].Date,
			StartHour:     hourly[i].StartHour,
			EndHour:       hourly[i+durationHours-1].EndHour,
			DurationHours: durationHours,
			Available:     true,
		})
	}
	return aggregated
}

// dedupeHourly unions hourly candidates by (date, start hour). Duplicate
// cells are legal after expansion of overlapping rules but must count once.
func dedupeHourly(slots []models.TimeSlot) []models.TimeSlot {
	type cell struct {
		date time.Time
		hour int
	}
	seen := make(map[cell]struct{}, len(slots))
	unique := make([]models.TimeSlot, 0, len(slots))
	for _, s := range slots {
		key := cell{date: s.Date, hour: s.StartHour}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

// dateOnly truncates an instant to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
