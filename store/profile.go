package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kindmap/kindmap-api/schema"
)

// MongoProfile - interface for client profile documents
type MongoProfile interface {
	CreateProfile(id, accountNumber string) error
	GetProfile(accountNumber string) (*schema.Profile, error)
	UpdateProfileLastLocation(accountNumber string, loc schema.Location) error
	DeleteProfile(accountNumber string) error
}

// CreateProfile inserts the per-client bookmark document.
func (m *mongoDB) CreateProfile(id, accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	_, err := c.InsertOne(ctx, schema.Profile{
		ID:            id,
		AccountNumber: accountNumber,
		State: schema.ProfileState{
			LastActiveTime: time.Now().UTC(),
		},
	})
	return err
}

// GetProfile finds the profile of a client.
func (m *mongoDB) GetProfile(accountNumber string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// UpdateProfileLastLocation records the device position most recently
// reported by the client. It is the pipeline's reference point when a
// request carries no explicit coordinates.
func (m *mongoDB) UpdateProfileLastLocation(accountNumber string, loc schema.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"account_number": accountNumber,
	}, bson.M{
		"$set": bson.M{
			"state.last_location":    loc,
			"state.last_active_time": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// DeleteProfile removes the client's profile document permanently.
func (m *mongoDB) DeleteProfile(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	_, err := c.DeleteMany(ctx, bson.M{"account_number": accountNumber})
	return err
}
