package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"hivewellness/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// blockingOverlapFilter matches pending/confirmed appointments for the same
// therapist and date whose [start, end) interval intersects [start, end).
func blockingOverlapFilter(therapistID, date string, start, end int) bson.M {
	return bson.M{
		"therapist_id": therapistID,
		"date":         date,
		"status":       bson.M{"$in": bson.A{models.AppointmentPending, models.AppointmentConfirmed}},
		"start":        bson.M{"$lt": end},
		"end":          bson.M{"$gt": start},
	}
}

func dayLedgerFilter(therapistID, date string) bson.M {
	return bson.M{"therapist_id": therapistID, "date": date}
}

// Reserve runs the overlap re-check and the insert inside one transaction.
// Under snapshot isolation a bare check-then-insert is not enough: two
// concurrent reservations each count zero overlaps against their own snapshot
// and insert distinct documents, so neither transaction aborts. Bumping the
// shared per-therapist-day ledger document first makes racing reservations
// write the same document; the loser aborts on the write conflict, the driver
// reruns it, and the re-run counts the winner's committed appointment and
// returns ErrOverlap.
func (repo *mongoAppointmentRepo) Reserve(ctx context.Context, appt *models.Appointment) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	// sess.WithTransaction retries the callback on transient write conflicts,
	// which is what turns the ledger collision into a clean ErrOverlap for the
	// losing side.
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := repo.ledger.UpdateOne(sc,
			dayLedgerFilter(appt.TherapistID, appt.Date),
			bson.M{"$inc": bson.M{"version": 1}},
			options.Update().SetUpsert(true),
		); err != nil {
			return nil, fmt.Errorf("day ledger update failed: %w", err)
		}

		filter := blockingOverlapFilter(appt.TherapistID, appt.Date, appt.Start, appt.End)
		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return nil, fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return nil, ErrOverlap
		}

		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil, nil
	})
	if errors.Is(err, ErrOverlap) {
		return ErrOverlap
	}
	if err != nil {
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}
