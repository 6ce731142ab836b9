// File: database/repository/therapist/interface.go
package therapistRepo

import (
	"context"

	"hivewellness/database"
	"hivewellness/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TherapistRepository interface {
	Create(ctx context.Context, t models.Therapist) error
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	GetByEmail(ctx context.Context, email string) (*models.Therapist, error)
	Update(ctx context.Context, t models.Therapist) error
	ListActive(ctx context.Context) ([]models.Therapist, error)
}

type mongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo constructs a new MongoDB TherapistRepository.
func NewMongoTherapistRepo() TherapistRepository {
	db := database.MongoClient.Database("hivewellness")
	return &mongoTherapistRepo{
		coll: db.Collection("therapists"),
	}
}
