package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kindmap/kindmap-api/schema"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile not found")
)

// Bookmark - interface for per-client bookmark operations
type Bookmark interface {
	AddBookmark(accountNumber string, b schema.Bookmark) error
	RemoveBookmark(accountNumber string, postID primitive.ObjectID) error
	HasBookmark(accountNumber string, postID primitive.ObjectID) (bool, error)
	ListBookmarks(accountNumber string) ([]schema.Bookmark, error)
}

// AddBookmark writes a denormalized post snapshot into the client's profile,
// replacing any existing snapshot with the same post id. New entries append,
// so insertion order is preserved.
func (m *mongoDB) AddBookmark(accountNumber string, b schema.Bookmark) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"account_number":    accountNumber,
		"bookmarks.post_id": b.PostID,
	}, bson.M{
		"$set": bson.M{"bookmarks.$": b},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	result, err = c.UpdateOne(ctx, bson.M{
		"account_number": accountNumber,
	}, bson.M{
		"$push": bson.M{"bookmarks": b},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// RemoveBookmark deletes the snapshot with the matching post id. Removing an
// absent bookmark is a no-op.
func (m *mongoDB) RemoveBookmark(accountNumber string, postID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	result, err := c.UpdateOne(ctx, bson.M{
		"account_number": accountNumber,
	}, bson.M{
		"$pull": bson.M{"bookmarks": bson.M{"post_id": postID}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// HasBookmark tests whether the client has pinned the given post.
func (m *mongoDB) HasBookmark(accountNumber string, postID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	count, err := c.CountDocuments(ctx, bson.M{
		"account_number":    accountNumber,
		"bookmarks.post_id": postID,
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListBookmarks returns the client's bookmarks in insertion order. A missing
// profile or an undecodable bookmark list degrades to an empty list: a
// corrupted store must never take bookmark-dependent rendering down.
func (m *mongoDB) ListBookmarks(accountNumber string) ([]schema.Bookmark, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	res := c.FindOne(ctx, bson.M{"account_number": accountNumber})
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return []schema.Bookmark{}, nil
		}
		return nil, err
	}

	var result struct {
		Bookmarks []schema.Bookmark `bson:"bookmarks"`
	}
	if err := res.Decode(&result); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Warn("undecodable bookmark list, treating as empty")
		return []schema.Bookmark{}, nil
	}

	if result.Bookmarks == nil {
		return []schema.Bookmark{}, nil
	}
	return result.Bookmarks, nil
}
