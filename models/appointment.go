package models

import "time"

// Appointment statuses. pending -> confirmed -> completed, with cancelled
// reachable from pending or confirmed. completed and cancelled are terminal.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment represents one therapy session booking.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`                     // Unique appointment identifier (UUID)
	TherapistID string    `bson:"therapist_id" json:"therapistId"`  // Therapist who was booked
	ClientID    string    `bson:"client_id" json:"clientId"`        // Client who made the booking
	Date        string    `bson:"date" json:"date"`                 // Calendar day in "YYYY-MM-DD" format
	Start       int       `bson:"start" json:"start"`               // Start time (minutes from midnight)
	End         int       `bson:"end" json:"end"`                   // Start + Duration, stored for overlap queries
	Duration    int       `bson:"duration" json:"durationMinutes"`  // Session length in minutes
	Status      string    `bson:"status" json:"status"`             // pending, confirmed, cancelled or completed
	Price       float64   `bson:"price,omitempty" json:"price"`     // Charged amount, zero for free consultations
	Invoice     *Invoice  `bson:"invoice,omitempty" json:"invoice,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Blocking reports whether the appointment reserves its interval against new
// bookings. Pending appointments block: the slot is held while payment settles.
func (a Appointment) Blocking() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// Overlaps applies the half-open interval test against [start, end).
func (a Appointment) Overlaps(start, end int) bool {
	return start < a.End && a.Start < end
}

// CanTransition reports whether a status change is allowed by the appointment
// state machine.
func CanTransition(from, to string) bool {
	switch from {
	case AppointmentPending:
		return to == AppointmentConfirmed || to == AppointmentCancelled
	case AppointmentConfirmed:
		return to == AppointmentCompleted || to == AppointmentCancelled
	}
	return false
}
