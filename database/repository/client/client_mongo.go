package clientRepo

import (
	"context"
	"fmt"
	"time"

	"hivewellness/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoClientRepo) Create(ctx context.Context, c models.Client) error {
	if _, err := repo.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

func (repo *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", id, err)
	}
	return &c, nil
}

func (repo *mongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client by email: %w", err)
	}
	return &c, nil
}

func (repo *mongoClientRepo) Update(ctx context.Context, c models.Client) error {
	c.UpdatedAt = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": c.ID}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("client %s not found", c.ID)
	}
	return nil
}
