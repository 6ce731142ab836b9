package scheduling

import (
	"context"

	"hivewellness/models"
)

// ReserveRequest is the write-path input: one client asking for one slot.
type ReserveRequest struct {
	TherapistID     string
	ClientID        string
	Date            string // "YYYY-MM-DD"
	Start           int    // minutes from midnight
	Duration        int    // minutes
	PaymentMethodID string // optional; required for paid sessions charged up front
}

// Service is the scheduling engine surface used by the HTTP handlers.
type Service interface {
	// DaySlots computes the ordered slot list for one therapist and date,
	// including unavailable entries so the portal can grey them out.
	DaySlots(ctx context.Context, therapistID, date string, durationMinutes int) ([]models.Slot, error)
	// Reserve re-validates the slot and atomically creates the appointment.
	// Returns a ConflictError when someone else took the slot first.
	Reserve(ctx context.Context, req ReserveRequest) (*models.Appointment, error)
	// Cancel moves a pending or confirmed appointment to cancelled and refunds
	// any settled charge.
	Cancel(ctx context.Context, appointmentID, requesterID string) error
	ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	ListForTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error)
}
