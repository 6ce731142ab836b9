package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hivewellness/config"
	appointmentRepo "hivewellness/database/repository/appointment"
	"hivewellness/models"
	"hivewellness/services/notification"
	"hivewellness/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"reminderId":    p.ReminderID,
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
		}

		var err error
		switch p.Target {
		case "client":
			err = notifSvc.SendClientPush(ctx, p.ID, p.Title, p.Body, data)
		case "therapist":
			err = notifSvc.SendTherapistPush(ctx, p.ID, p.Title, p.Body, data)
		default:
			log.Printf("[ReminderHandler] unknown target type: %s", p.Target)
			return nil
		}

		if err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
		}
		return err
	}
}

// StartCompletionSweep periodically promotes confirmed appointments whose
// session time has passed to completed. Booking itself never writes the
// completed status.
func StartCompletionSweep(repo appointmentRepo.AppointmentRepository) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := repo.MarkCompletedBefore(ctx, time.Now())
		if err != nil {
			log.Printf("[CompletionSweep] sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[CompletionSweep] marked %d appointments completed", n)
		}
	})
	if err != nil {
		log.Fatalf("[CompletionSweep] invalid schedule: %v", err)
	}
	c.Start()
	return c
}
