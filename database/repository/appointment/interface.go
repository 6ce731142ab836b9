// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"log"
	"time"

	"hivewellness/database"
	"hivewellness/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrOverlap is returned by Reserve when the requested interval intersects a
// pending or confirmed appointment for the same therapist and date.
var ErrOverlap = errors.New("appointment overlaps an existing booking")

type AppointmentRepository interface {
	// Reserve re-checks the overlap invariant and inserts the appointment in a
	// single transaction. Returns ErrOverlap (no row written) on conflict.
	Reserve(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListBlocking returns the pending/confirmed appointments for one
	// therapist on one date, ordered by start time.
	ListBlocking(ctx context.Context, therapistID, date string) ([]models.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	ListByTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// MarkCompletedBefore promotes confirmed appointments whose end passed
	// before the cutoff. Used by the completion sweep.
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
	// ledger holds one document per (therapist, date). Reserve writes it inside
	// the reservation transaction so concurrent bookings for the same day
	// conflict on a shared document instead of committing side by side.
	ledger *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("hivewellness")
	repo := &mongoAppointmentRepo{
		coll:   db.Collection("appointments"),
		ledger: db.Collection("appointment_day_ledger"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("appointment repo: failed to ensure indexes: %v", err)
	}
	return repo
}
