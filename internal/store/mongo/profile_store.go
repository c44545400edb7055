// Package mongo implements the profile document store on MongoDB. It mirrors
// the original mobile backend's layout: one document per user id, training
// history as an embedded array appended with $push.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
	"github.com/NureDudukovOleksandr/Kozachok/internal/store"
)

const collectionName = "user-settings"

// Connect opens a client against uri and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("unable to ping mongodb: %w", err)
	}
	return client, nil
}

type profileDocument struct {
	ID             string `bson:"_id"`
	models.Profile `bson:",inline"`
}

type ProfileStore struct {
	collection *mongo.Collection
}

func NewProfileStore(db *mongo.Database) *ProfileStore {
	return &ProfileStore{collection: db.Collection(collectionName)}
}

func (s *ProfileStore) Exists(ctx context.Context, userID string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check profile existence: %w", err)
	}
	return count > 0, nil
}

func (s *ProfileStore) Create(ctx context.Context, userID string, profile *models.Profile) error {
	return s.replace(ctx, userID, profile)
}

func (s *ProfileStore) Overwrite(ctx context.Context, userID string, profile *models.Profile) error {
	return s.replace(ctx, userID, profile)
}

func (s *ProfileStore) replace(ctx context.Context, userID string, profile *models.Profile) error {
	doc := profileDocument{ID: userID, Profile: *profile}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": userID}, doc, opts); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) Read(ctx context.Context, userID string) (*models.Profile, error) {
	var doc profileDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	profile := doc.Profile
	profile.Normalize()
	return &profile, nil
}

// AppendTraining uses $push rather than $addToSet: identical records are a
// legal state of the history and must both be kept.
func (s *ProfileStore) AppendTraining(ctx context.Context, userID string, record models.TrainingRecord) error {
	update := bson.M{"$push": bson.M{"trainingData": record}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("append training record: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
