package therapistRepo

import (
	"context"
	"fmt"
	"time"

	"hivewellness/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoTherapistRepo) Create(ctx context.Context, t models.Therapist) error {
	if _, err := repo.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert therapist: %w", err)
	}
	return nil
}

func (repo *mongoTherapistRepo) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	var t models.Therapist
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist %s: %w", id, err)
	}
	return &t, nil
}

func (repo *mongoTherapistRepo) GetByEmail(ctx context.Context, email string) (*models.Therapist, error) {
	var t models.Therapist
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist by email: %w", err)
	}
	return &t, nil
}

func (repo *mongoTherapistRepo) Update(ctx context.Context, t models.Therapist) error {
	t.UpdatedAt = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update therapist: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("therapist %s not found", t.ID)
	}
	return nil
}

func (repo *mongoTherapistRepo) ListActive(ctx context.Context) ([]models.Therapist, error) {
	cur, err := repo.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("therapist query failed: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Therapist
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode therapists: %w", err)
	}
	return out, nil
}
