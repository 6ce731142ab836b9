package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hivewellness/config"
	"hivewellness/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload into an asynq task scheduled for
// fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues session reminders for later delivery.
type ReminderScheduler interface {
	ScheduleSessionReminders(ctx context.Context, appt models.Appointment) error
}

// AsynqReminderScheduler is the production scheduler backed by the shared
// Redis reminder queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleSessionReminders enqueues one reminder for each side of the session,
// firing ReminderLeadMinutes before the start time. Sessions starting sooner
// than the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleSessionReminders(ctx context.Context, appt models.Appointment) error {
	day, err := time.ParseInLocation("2006-01-02", appt.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", appt.Date, err)
	}
	startAt := day.Add(time.Duration(appt.Start) * time.Minute)
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	targets := []struct {
		target string
		id     string
		body   string
	}{
		{"client", appt.ClientID, fmt.Sprintf("Your therapy session starts at %02d:%02d.", appt.Start/60, appt.Start%60)},
		{"therapist", appt.TherapistID, fmt.Sprintf("Your next session starts at %02d:%02d.", appt.Start/60, appt.Start%60)},
	}

	for _, t := range targets {
		payload := models.ReminderPayload{
			ReminderID:    uuid.New().String(),
			Target:        t.target,
			ID:            t.id,
			AppointmentID: appt.ID,
			Title:         "Upcoming session",
			Body:          t.body,
			FireDate:      fireAt.Format(time.RFC3339),
		}
		task, opts, err := NewReminderTask(payload, fireAt)
		if err != nil {
			return err
		}
		if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
			return fmt.Errorf("failed to enqueue reminder: %w", err)
		}
	}
	return nil
}
