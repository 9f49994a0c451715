package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kindmap/kindmap-api/schema"
)

var (
	ErrNoLandmarks = fmt.Errorf("no landmarks loaded")
)

// Landmark - interface for the static landmark list
type Landmark interface {
	ReplaceLandmarks(landmarks []schema.Landmark) error
	ListLandmarks() ([]schema.Landmark, error)
	NearestLandmarks(distance float64, cords schema.Location) ([]schema.Landmark, error)
}

// ReplaceLandmarks swaps the entire landmark list. Only the importer calls
// this; the list is read-only at runtime.
func (m *mongoDB) ReplaceLandmarks(landmarks []schema.Landmark) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LandmarkCollection)

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(landmarks))
	for _, l := range landmarks {
		docs = append(docs, l)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := c.InsertMany(ctx, docs)
	return err
}

// ListLandmarks returns the full landmark list.
func (m *mongoDB) ListLandmarks() ([]schema.Landmark, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LandmarkCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var landmarks []schema.Landmark
	if err := cursor.All(ctx, &landmarks); err != nil {
		return nil, err
	}

	return landmarks, nil
}

// NearestLandmarks returns landmarks within the given distance of a point,
// nearest first.
func (m *mongoDB) NearestLandmarks(distance float64, cords schema.Location) ([]schema.Landmark, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LandmarkCollection)

	cursor, err := c.Find(ctx, bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{cords.Longitude, cords.Latitude},
				},
				"$maxDistance": distance,
			},
		},
	}, options.Find().SetLimit(32))
	if err != nil {
		return nil, err
	}

	var landmarks []schema.Landmark
	if err := cursor.All(ctx, &landmarks); err != nil {
		return nil, err
	}

	return landmarks, nil
}
