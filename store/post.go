package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kindmap/kindmap-api/schema"
)

var (
	ErrPostNotFound = fmt.Errorf("post not found")
)

// Post - interface for post operations
type Post interface {
	AddPost(post schema.Post, lifetime time.Duration) (*schema.Post, error)
	GetPost(postID primitive.ObjectID) (*schema.Post, error)
	ListActivePosts(now time.Time) ([]schema.Post, error)
	UpdatePostPosition(postID primitive.ObjectID, clientID string, loc schema.Location) (*schema.Post, error)
	DeletePost(postID primitive.ObjectID) error
	ExpirePosts(now time.Time) ([]primitive.ObjectID, error)
}

// AddPost stores a new post, assigning its id, creation time and expiry.
func (m *mongoDB) AddPost(post schema.Post, lifetime time.Duration) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.ExpiresAt = now.Add(lifetime)

	c := m.client.Database(m.database).Collection(schema.PostCollection)
	if _, err := c.InsertOne(ctx, post); err != nil {
		return nil, err
	}

	return &post, nil
}

// GetPost finds a post by id.
func (m *mongoDB) GetPost(postID primitive.ObjectID) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PostCollection)

	var post schema.Post
	if err := c.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// ListActivePosts returns every post that has not yet expired. Posts without
// an expiry are always active.
func (m *mongoDB) ListActivePosts(now time.Time) ([]schema.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PostCollection)

	cursor, err := c.Find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"expires_at": bson.M{"$exists": false}},
			bson.M{"expires_at": bson.M{"$gt": now}},
		},
	})
	if err != nil {
		return nil, err
	}

	var posts []schema.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// UpdatePostPosition moves a draggable post. Only the creating client may
// reposition its own posts.
func (m *mongoDB) UpdatePostPosition(postID primitive.ObjectID, clientID string, loc schema.Location) (*schema.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PostCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"_id":       postID,
		"client_id": clientID,
	}, bson.M{
		"$set": bson.M{"location": schema.NewGeoJSON(loc)},
	})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrPostNotFound
	}

	return m.GetPost(postID)
}

// DeletePost removes a post by id. Deleting an absent post is a no-op.
func (m *mongoDB) DeletePost(postID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PostCollection)
	_, err := c.DeleteMany(ctx, bson.M{"_id": postID})
	return err
}

// ExpirePosts deletes every expired post that no profile bookmarks and
// returns the removed ids. Bookmarked posts are exempt from expiry-based
// removal.
func (m *mongoDB) ExpirePosts(now time.Time) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	profiles := m.client.Database(m.database).Collection(schema.ProfileCollection)
	pinned, err := profiles.Distinct(ctx, "bookmarks.post_id", bson.M{})
	if err != nil {
		return nil, err
	}

	posts := m.client.Database(m.database).Collection(schema.PostCollection)
	query := bson.M{
		"expires_at": bson.M{"$lt": now},
		"_id":        bson.M{"$nin": pinned},
	}

	cursor, err := posts.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	var expired []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &expired); err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(expired))
	for _, e := range expired {
		ids = append(ids, e.ID)
	}

	result, err := posts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"deleted": result.DeletedCount,
	}).Info("expired posts removed")

	return ids, nil
}
