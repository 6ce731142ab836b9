// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"hivewellness/database"
	"hivewellness/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	// Get returns the therapist's weekly template, or nil when none has been
	// configured. A missing template is not an error: it reads as a therapist
	// with no availability.
	Get(ctx context.Context, therapistID string) (*models.WeeklyAvailability, error)
	Upsert(ctx context.Context, weekly models.WeeklyAvailability) error
	Delete(ctx context.Context, therapistID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("hivewellness")
	return &mongoAvailabilityRepo{
		coll: db.Collection("weekly_availability"),
	}
}
