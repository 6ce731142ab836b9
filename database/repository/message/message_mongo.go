package messageRepo

import (
	"context"
	"fmt"

	"hivewellness/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoMessageRepo) Insert(ctx context.Context, m models.Message) error {
	if _, err := repo.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (repo *mongoMessageRepo) ListThread(ctx context.Context, clientID, therapistID string) ([]models.Message, error) {
	filter := bson.M{"client_id": clientID, "therapist_id": therapistID}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})

	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("message query failed: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Message
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return out, nil
}

// MarkThreadRead marks messages sent by the other party as read.
func (repo *mongoMessageRepo) MarkThreadRead(ctx context.Context, clientID, therapistID, readerRole string) error {
	senderRole := "therapist"
	if readerRole == "therapist" {
		senderRole = "client"
	}
	filter := bson.M{
		"client_id":    clientID,
		"therapist_id": therapistID,
		"sender_role":  senderRole,
		"read":         false,
	}
	if _, err := repo.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	return nil
}
