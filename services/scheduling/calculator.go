package scheduling

import (
	"fmt"
	"sort"
	"time"

	"hivewellness/models"
)

// ComputeSlots derives the candidate slots for one therapist-day. It is a pure
// function over the therapist's weekly template and the day's blocking
// appointments, so availability reads are idempotent between writes.
//
// Each enabled TimeBlock for the date's weekday is discretised at
// slotDuration increments; a candidate start is kept only while
// start+slotDuration fits inside the block. Slots that intersect a pending or
// confirmed appointment are returned with Available=false rather than dropped,
// so callers can render booked slots greyed out. Same-day slots whose start
// already passed, and weekend slots under the weekday-only policy, are marked
// unavailable the same way.
func ComputeSlots(
	weekly models.WeeklyAvailability,
	appointments []models.Appointment,
	date time.Time,
	slotDuration int,
	now time.Time,
	weekdayOnly bool,
) []models.Slot {
	if slotDuration <= 0 {
		return nil
	}

	blocks := weekly.BlocksFor(date.Weekday())
	if len(blocks) == 0 {
		return nil
	}

	dateStr := date.Format("2006-01-02")
	sameDay := dateStr == now.Format("2006-01-02")
	nowMinute := now.Hour()*60 + now.Minute()
	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

	var slots []models.Slot
	for _, block := range blocks {
		for start := block.Start; start+slotDuration <= block.End; start += slotDuration {
			slot := models.Slot{
				Date:      dateStr,
				Start:     start,
				Duration:  slotDuration,
				Available: true,
			}

			switch {
			case weekdayOnly && weekend:
				slot.Available = false
				slot.ConflictReason = models.ReasonWeekendOnly
			case sameDay && start < nowMinute:
				slot.Available = false
				slot.ConflictReason = models.ReasonPast
			default:
				for _, appt := range appointments {
					if appt.Blocking() && appt.Overlaps(start, start+slotDuration) {
						slot.Available = false
						slot.ConflictReason = models.ReasonBooked
						break
					}
				}
			}

			slots = append(slots, slot)
		}
	}

	// Blocks never overlap, but they are not required to arrive sorted.
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})

	return slots
}

// ParseClock converts a "HH:MM" wall-clock string to minutes from midnight.
// The whole string must be a valid clock time; trailing input is an error.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}
