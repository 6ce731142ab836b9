package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"hivewellness/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoAvailabilityRepo) Get(ctx context.Context, therapistID string) (*models.WeeklyAvailability, error) {
	var weekly models.WeeklyAvailability
	err := repo.coll.FindOne(ctx, bson.M{"therapist_id": therapistID}).Decode(&weekly)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly availability for %s: %w", therapistID, err)
	}
	return &weekly, nil
}

func (repo *mongoAvailabilityRepo) Upsert(ctx context.Context, weekly models.WeeklyAvailability) error {
	weekly.UpdatedAt = time.Now()
	filter := bson.M{"therapist_id": weekly.TherapistID}
	update := bson.M{"$set": weekly}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert weekly availability: %w", err)
	}
	return nil
}

func (repo *mongoAvailabilityRepo) Delete(ctx context.Context, therapistID string) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"therapist_id": therapistID}); err != nil {
		return fmt.Errorf("failed to delete weekly availability: %w", err)
	}
	return nil
}
