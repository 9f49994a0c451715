package background

import (
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeletePost is the background task removing a single post upstream. The
// client-facing deletion path is fire-and-forget; reliability comes from
// this task's bounded machinery retries.
func (m *BackgroundManager) DeletePost(postID string) error {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		// A malformed id can never succeed; retrying is pointless.
		log.WithField("prefix", "background").WithError(err).
			Error("delete_post task with malformed id")
		return nil
	}

	if err := m.mongo.DeletePost(id); err != nil {
		return err
	}

	log.WithField("prefix", "background").WithField("post_id", postID).
		Info("post deleted")
	return nil
}

// ExpirePosts is a background job to sweep expired posts that nobody has
// bookmarked out of the store.
func (m *BackgroundManager) ExpirePosts() error {
	ids, err := m.mongo.ExpirePosts(time.Now().UTC())
	if err != nil {
		return err
	}

	if len(ids) > 0 {
		log.WithField("prefix", "background").WithField("expired", len(ids)).
			Info("expiry sweep complete")
	}
	return nil
}
