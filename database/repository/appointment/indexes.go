package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the overlap query and the per-user
// listings.
func (repo *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Conflict-domain index: the overlap check always filters on
			// therapist, date and status before comparing intervals.
			Keys: bson.D{
				{Key: "therapist_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "status", Value: 1},
				{Key: "start", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "date", Value: -1}},
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}

	// One ledger document per therapist-day. The unique index keeps the
	// upsert inside the reservation transaction from racing itself into
	// duplicates on a day's first booking.
	_, err := repo.ledger.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "therapist_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
