package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexPostCollection())
	panicIfError(m.IndexLandmarkCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"account_number": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"bookmarks.post_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexPostCollection() error {
	if err := m.createIndex(PostCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(PostCollection, mongo.IndexModel{
		Keys: bson.M{
			"client_id": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(PostCollection, mongo.IndexModel{
		Keys: bson.M{
			"expires_at": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexLandmarkCollection() error {
	if err := m.createIndex(LandmarkCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(LandmarkCollection, mongo.IndexModel{
		Keys: bson.M{
			"name": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
