package models

import "fmt"

// Conflict reasons attached to unavailable slots.
const (
	ReasonBooked      = "booked"
	ReasonPast        = "past"
	ReasonWeekendOnly = "weekday-only booking"
)

// Slot is a candidate booking unit derived on the fly from a therapist's
// weekly availability and the day's appointments. Slots are never persisted.
type Slot struct {
	Date           string `json:"date"`
	Start          int    `json:"start"` // minutes from midnight
	Duration       int    `json:"durationMinutes"`
	Available      bool   `json:"isAvailable"`
	ConflictReason string `json:"conflictReason,omitempty"`
}

// Time renders the slot start as "HH:MM" for the API surface.
func (s Slot) Time() string {
	return fmt.Sprintf("%02d:%02d", s.Start/60, s.Start%60)
}

// SlotResponse is the wire shape for a single slot in availability responses.
type SlotResponse struct {
	Time           string `json:"time"`
	IsAvailable    bool   `json:"isAvailable"`
	ConflictReason string `json:"conflictReason,omitempty"`
}

// ToResponse converts a computed slot into its wire shape.
func (s Slot) ToResponse() SlotResponse {
	return SlotResponse{
		Time:           s.Time(),
		IsAvailable:    s.Available,
		ConflictReason: s.ConflictReason,
	}
}
