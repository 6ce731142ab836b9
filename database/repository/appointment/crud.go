package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"hivewellness/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *mongoAppointmentRepo) ListBlocking(ctx context.Context, therapistID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"therapist_id": therapistID,
		"date":         date,
		"status":       bson.M{"$in": bson.A{models.AppointmentPending, models.AppointmentConfirmed}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	return repo.list(ctx, filter, opts)
}

func (repo *mongoAppointmentRepo) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	return repo.list(ctx, bson.M{"client_id": clientID}, opts)
}

func (repo *mongoAppointmentRepo) ListByTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	return repo.list(ctx, bson.M{"therapist_id": therapistID}, opts)
}

func (repo *mongoAppointmentRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("appointment query failed: %w", err)
	}
	defer cur.Close(ctx)

	var appts []models.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (repo *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// MarkCompletedBefore promotes confirmed appointments whose session ended
// before the cutoff. Date and end-minute are compared separately: anything on
// an earlier day completes outright, same-day rows complete once their end
// minute has passed.
func (repo *mongoAppointmentRepo) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	day := cutoff.Format("2006-01-02")
	minuteOfDay := cutoff.Hour()*60 + cutoff.Minute()

	filter := bson.M{
		"status": models.AppointmentConfirmed,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": day}},
			bson.M{"date": day, "end": bson.M{"$lte": minuteOfDay}},
		},
	}
	update := bson.M{"$set": bson.M{"status": models.AppointmentCompleted, "updated_at": time.Now()}}

	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("completion sweep failed: %w", err)
	}
	return res.ModifiedCount, nil
}
