// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"hivewellness/database"
	"hivewellness/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	Create(ctx context.Context, c models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Update(ctx context.Context, c models.Client) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database("hivewellness")
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
