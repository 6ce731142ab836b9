package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "hivewellness/database/repository/appointment"
	"hivewellness/models"
	"hivewellness/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve re-validates the requested slot against current state and atomically
// creates the appointment. The overlap re-check and the insert run inside one
// repository transaction, which closes the race window between a client
// viewing availability and submitting the booking.
func (se *DefaultSchedulingEngine) Reserve(ctx context.Context, req ReserveRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	day, err := se.validateReserveRequest(req)
	if err != nil {
		return nil, err
	}

	therapist, err := se.Therapists.GetByID(ctx, req.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, NewValidationError("therapistId", "unknown therapist")
	}
	client, err := se.Clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, NewValidationError("clientId", "unknown client")
	}

	if err := se.checkWithinAvailability(ctx, req, day); err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:          uuid.New().String(),
		TherapistID: req.TherapistID,
		ClientID:    req.ClientID,
		Date:        req.Date,
		Start:       req.Start,
		End:         req.Start + req.Duration,
		Duration:    req.Duration,
		Status:      models.AppointmentConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Paid sessions are charged before the slot is committed; a conflict after
	// a settled charge refunds it.
	if therapist.SessionRate > 0 {
		invoice, err := se.chargeSession(ctx, therapist, client, req)
		if err != nil {
			return nil, err
		}
		appt.Price = therapist.SessionRate
		appt.Invoice = invoice
		if invoice.Status != "paid" {
			appt.Status = models.AppointmentPending
		}
	}

	if err := se.Appointments.Reserve(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrOverlap) {
			se.refundAfterConflict(ctx, appt)
			return nil, NewConflictError("This time slot is no longer available")
		}
		return nil, fmt.Errorf("reservation failed: %w", err)
	}

	// Post-commit side effects. None of these may undo the booking.
	se.invalidateSlots(ctx, req.TherapistID, req.Date)
	se.notifyBooked(ctx, appt, therapist.Name, client.Name)
	if se.Reminders != nil {
		if err := se.Reminders.ScheduleSessionReminders(ctx, *appt); err != nil {
			logger.Warn("failed to schedule session reminders",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment reserved",
		zap.String("appointmentID", appt.ID),
		zap.String("therapistID", appt.TherapistID),
		zap.String("date", appt.Date),
		zap.Int("start", appt.Start))
	return appt, nil
}

func (se *DefaultSchedulingEngine) validateReserveRequest(req ReserveRequest) (time.Time, error) {
	if req.TherapistID == "" {
		return time.Time{}, NewValidationError("therapistId", "is required")
	}
	if req.ClientID == "" {
		return time.Time{}, NewValidationError("clientId", "is required")
	}
	if req.Duration <= 0 {
		return time.Time{}, NewValidationError("durationMinutes", "must be a positive number of minutes")
	}
	if req.Start < 0 || req.Start+req.Duration > 24*60 {
		return time.Time{}, NewValidationError("time", "session must fall within one calendar day")
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must be formatted YYYY-MM-DD")
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	if req.Date < today {
		return time.Time{}, NewValidationError("date", "must not be in the past")
	}
	if req.Date == today && req.Start < now.Hour()*60+now.Minute() {
		return time.Time{}, NewValidationError("time", "slot start has already passed")
	}

	if se.WeekdayOnly && (day.Weekday() == time.Saturday || day.Weekday() == time.Sunday) {
		return time.Time{}, NewValidationError("date", "weekend booking is not enabled")
	}

	return day, nil
}

// checkWithinAvailability rejects requests outside the therapist's weekly
// template. The overlap check against other bookings happens later, inside
// the reservation transaction.
func (se *DefaultSchedulingEngine) checkWithinAvailability(ctx context.Context, req ReserveRequest, day time.Time) error {
	weekly, err := se.Availability.Get(ctx, req.TherapistID)
	if err != nil {
		return err
	}
	if weekly == nil {
		return NewValidationError("time", "therapist has no availability configured")
	}
	for _, block := range weekly.BlocksFor(day.Weekday()) {
		if req.Start >= block.Start && req.Start+req.Duration <= block.End {
			return nil
		}
	}
	return NewValidationError("time", "requested time is outside the therapist's availability")
}

func (se *DefaultSchedulingEngine) chargeSession(ctx context.Context, therapist *models.Therapist, client *models.Client, req ReserveRequest) (*models.Invoice, error) {
	if se.Payments == nil {
		// No processor wired (e.g. free-tier deployment): hold the slot
		// pending out-of-band payment.
		return &models.Invoice{
			InvoiceID: uuid.New().String(),
			ClientID:  client.ID,
			Amount:    therapist.SessionRate,
			Currency:  therapist.Currency,
			Status:    "pending",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}, nil
	}
	invoice, err := se.Payments.Charge(ctx, models.PaymentRequest{
		ClientID:        client.ID,
		Amount:          therapist.SessionRate,
		Currency:        therapist.Currency,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}
	return invoice, nil
}

func (se *DefaultSchedulingEngine) refundAfterConflict(ctx context.Context, appt *models.Appointment) {
	if se.Payments == nil || appt.Invoice == nil || appt.Invoice.Status != "paid" {
		return
	}
	if err := se.Payments.Refund(ctx, appt.Invoice); err != nil {
		utils.GetLogger().Error("failed to refund after booking conflict",
			zap.String("invoice", appt.Invoice.InvoiceID), zap.Error(err))
	}
}

func (se *DefaultSchedulingEngine) notifyBooked(ctx context.Context, appt *models.Appointment, therapistName, clientName string) {
	if se.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	data := map[string]string{
		"appointmentId": appt.ID,
		"date":          appt.Date,
		"start":         fmt.Sprintf("%02d:%02d", appt.Start/60, appt.Start%60),
	}

	if err := se.Notifier.SendClientPush(ctx, appt.ClientID,
		"Session booked",
		fmt.Sprintf("Your session with %s on %s is %s.", therapistName, appt.Date, appt.Status),
		data); err != nil {
		logger.Warn("client booking notification failed", zap.Error(err))
	}
	if err := se.Notifier.SendTherapistPush(ctx, appt.TherapistID,
		"New booking",
		fmt.Sprintf("%s booked a session on %s.", clientName, appt.Date),
		data); err != nil {
		logger.Warn("therapist booking notification failed", zap.Error(err))
	}
}
