// File: database/repository/message/interface.go
package messageRepo

import (
	"context"

	"hivewellness/database"
	"hivewellness/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MessageRepository interface {
	Insert(ctx context.Context, m models.Message) error
	// ListThread returns all messages between one client and one therapist,
	// oldest first.
	ListThread(ctx context.Context, clientID, therapistID string) ([]models.Message, error)
	MarkThreadRead(ctx context.Context, clientID, therapistID, readerRole string) error
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new MongoDB MessageRepository.
func NewMongoMessageRepo() MessageRepository {
	db := database.MongoClient.Database("hivewellness")
	return &mongoMessageRepo{
		coll: db.Collection("messages"),
	}
}
