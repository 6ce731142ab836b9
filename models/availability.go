package models

import (
	"time"
)

// TimeBlock is a contiguous recurring weekly window during which a therapist
// accepts bookings. Start and End are wall-clock minutes from midnight.
type TimeBlock struct {
	Start int `bson:"start" json:"start"` // e.g. 540 for 09:00
	End   int `bson:"end" json:"end"`     // e.g. 720 for 12:00
}

// DayAvailability holds the blocks for one day of the week. A disabled day
// keeps no blocks.
type DayAvailability struct {
	Weekday time.Weekday `bson:"weekday" json:"weekday"` // 0 = Sunday .. 6 = Saturday
	Enabled bool         `bson:"enabled" json:"enabled"`
	Blocks  []TimeBlock  `bson:"blocks,omitempty" json:"blocks,omitempty"`
}

// WeeklyAvailability is a therapist's recurring weekly template. Blocks within
// the same day must not overlap; that is validated on write, and the
// availability calculator relies on it.
type WeeklyAvailability struct {
	TherapistID string            `bson:"therapist_id" json:"therapistId"`
	Days        []DayAvailability `bson:"days" json:"days"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}

// BlocksFor returns the enabled blocks for the given weekday, or nil when the
// day is disabled or unset.
func (w WeeklyAvailability) BlocksFor(weekday time.Weekday) []TimeBlock {
	for _, d := range w.Days {
		if d.Weekday == weekday {
			if !d.Enabled {
				return nil
			}
			return d.Blocks
		}
	}
	return nil
}
