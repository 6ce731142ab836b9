package scheduling

import (
	"context"
	"time"

	appointmentRepo "hivewellness/database/repository/appointment"
	availabilityRepo "hivewellness/database/repository/availability"
	clientRepo "hivewellness/database/repository/client"
	therapistRepo "hivewellness/database/repository/therapist"
	"hivewellness/models"
	"hivewellness/services/notification"
	"hivewellness/services/payment"
	"hivewellness/services/tasks"
	"hivewellness/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultSchedulingEngine is the production scheduling engine. It holds no
// state of its own; every query and reservation works off data fetched
// per-request.
type DefaultSchedulingEngine struct {
	Appointments appointmentRepo.AppointmentRepository
	Availability availabilityRepo.AvailabilityRepository
	Therapists   therapistRepo.TherapistRepository
	Clients      clientRepo.ClientRepository
	Payments     payment.Processor
	Notifier     notification.Service
	Reminders    tasks.ReminderScheduler
	Cache        *redis.Client // nil disables slot caching

	// WeekdayOnly restricts bookable slots to Monday-Friday.
	WeekdayOnly bool
	// CacheTTL bounds staleness of cached slot lists between invalidations.
	CacheTTL time.Duration
}

var _ Service = (*DefaultSchedulingEngine)(nil)

// DaySlots computes the slot list for one therapist-day. An unknown therapist
// or an empty weekly template yields an empty list: "no availability
// configured" is a normal outcome, not an error.
func (se *DefaultSchedulingEngine) DaySlots(ctx context.Context, therapistID, date string, durationMinutes int) ([]models.Slot, error) {
	logger := utils.GetLogger()

	if therapistID == "" {
		return nil, NewValidationError("therapistId", "is required")
	}
	if durationMinutes <= 0 {
		return nil, NewValidationError("duration", "must be a positive number of minutes")
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, NewValidationError("date", "must be formatted YYYY-MM-DD")
	}

	now := time.Now()
	if day.Format("2006-01-02") < now.Format("2006-01-02") {
		return nil, NewValidationError("date", "must not be in the past")
	}

	if cached, ok := se.cachedSlots(ctx, therapistID, date, durationMinutes); ok {
		return cached, nil
	}

	weekly, err := se.Availability.Get(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if weekly == nil {
		logger.Debug("no weekly availability configured",
			zap.String("therapistID", therapistID), zap.String("date", date))
		return []models.Slot{}, nil
	}

	appts, err := se.Appointments.ListBlocking(ctx, therapistID, date)
	if err != nil {
		return nil, err
	}

	slots := ComputeSlots(*weekly, appts, day, durationMinutes, now, se.WeekdayOnly)
	if slots == nil {
		slots = []models.Slot{}
	}

	se.storeSlots(ctx, therapistID, date, durationMinutes, slots)
	return slots, nil
}

func (se *DefaultSchedulingEngine) ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	if clientID == "" {
		return nil, NewValidationError("clientId", "is required")
	}
	return se.Appointments.ListByClient(ctx, clientID)
}

func (se *DefaultSchedulingEngine) ListForTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error) {
	if therapistID == "" {
		return nil, NewValidationError("therapistId", "is required")
	}
	return se.Appointments.ListByTherapist(ctx, therapistID)
}
