package scheduling

import (
	"context"
	"fmt"

	"hivewellness/models"
	"hivewellness/utils"

	"go.uber.org/zap"
)

// Cancel moves an appointment to cancelled. Only the booked client or the
// booked therapist may cancel, and only from pending or confirmed.
func (se *DefaultSchedulingEngine) Cancel(ctx context.Context, appointmentID, requesterID string) error {
	logger := utils.GetLogger()

	appt, err := se.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		return NewValidationError("appointmentId", "unknown appointment")
	}
	if requesterID != appt.ClientID && requesterID != appt.TherapistID {
		return NewValidationError("appointmentId", "only a participant may cancel this appointment")
	}
	if !models.CanTransition(appt.Status, models.AppointmentCancelled) {
		return NewValidationError("status", fmt.Sprintf("cannot cancel a %s appointment", appt.Status))
	}

	if err := se.Appointments.UpdateStatus(ctx, appt.ID, models.AppointmentCancelled); err != nil {
		return err
	}

	// Settled charges are returned on cancellation; a failed refund is
	// surfaced to the operator via logs, the cancellation itself stands.
	if se.Payments != nil && appt.Invoice != nil && appt.Invoice.Status == "paid" {
		if err := se.Payments.Refund(ctx, appt.Invoice); err != nil {
			logger.Error("refund on cancellation failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	se.invalidateSlots(ctx, appt.TherapistID, appt.Date)

	if se.Notifier != nil {
		data := map[string]string{"appointmentId": appt.ID, "date": appt.Date}
		if requesterID == appt.ClientID {
			if err := se.Notifier.SendTherapistPush(ctx, appt.TherapistID,
				"Booking cancelled",
				fmt.Sprintf("The session on %s was cancelled by the client.", appt.Date), data); err != nil {
				logger.Warn("cancellation notification failed", zap.Error(err))
			}
		} else {
			if err := se.Notifier.SendClientPush(ctx, appt.ClientID,
				"Booking cancelled",
				fmt.Sprintf("Your session on %s was cancelled by the therapist.", appt.Date), data); err != nil {
				logger.Warn("cancellation notification failed", zap.Error(err))
			}
		}
	}

	logger.Info("appointment cancelled",
		zap.String("appointmentID", appt.ID), zap.String("by", requesterID))
	return nil
}
