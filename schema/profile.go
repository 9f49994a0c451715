package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProfileCollection = "profile"
)

// Bookmark is a denormalized snapshot of a post pinned by a client. It is
// the sole way a post stays visible once it expires, so it carries every
// field needed to render the post without the live record.
type Bookmark struct {
	PostID      primitive.ObjectID `bson:"post_id" json:"post_id"`
	Type        PostType           `bson:"type" json:"type"`
	User        string             `bson:"user" json:"user"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	Sticker     string             `bson:"sticker,omitempty" json:"sticker,omitempty"`
	PhotoData   string             `bson:"photo_data,omitempty" json:"photo_data,omitempty"`
	DoodleData  string             `bson:"doodle_data,omitempty" json:"doodle_data,omitempty"`
	Color       string             `bson:"color" json:"color"`
	Location    *Location          `bson:"location" json:"location"`
	ExpiresAt   FlexTime           `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	AddedAt     time.Time          `bson:"added_at" json:"added_at"`
}

// SnapshotOf builds a bookmark snapshot from a live post.
func SnapshotOf(p Post, now time.Time) Bookmark {
	return Bookmark{
		PostID:     p.ID,
		Type:       p.Type,
		User:       p.User,
		Message:    p.Message,
		Sticker:    p.Sticker,
		PhotoData:  p.PhotoData,
		DoodleData: p.DoodleData,
		Color:      p.Color,
		Location:   p.Coordinates(),
		ExpiresAt:  FlexTime{p.ExpiresAt},
		AddedAt:    now,
	}
}

// AsPost reconstructs a post record from the snapshot so the feed pipeline
// can treat bookmarks and live posts uniformly. Live data always wins over
// this reconstruction when both exist for the same id.
func (b Bookmark) AsPost() Post {
	var loc *GeoJSON
	if b.Location != nil {
		loc = NewGeoJSON(*b.Location)
	}
	return Post{
		ID:         b.PostID,
		Type:       b.Type,
		User:       b.User,
		Message:    b.Message,
		Sticker:    b.Sticker,
		PhotoData:  b.PhotoData,
		DoodleData: b.DoodleData,
		Color:      b.Color,
		Location:   loc,
		ExpiresAt:  b.ExpiresAt.Time,
	}
}

type ProfileState struct {
	LastActiveTime time.Time `bson:"last_active_time" json:"last_active_time"`
	LastLocation   *Location `bson:"last_location,omitempty" json:"last_location,omitempty"`
}

// Profile is the per-client mongo document holding bookmark state.
type Profile struct {
	ID            string       `bson:"id" json:"id"`
	AccountNumber string       `bson:"account_number" json:"account_number"`
	State         ProfileState `bson:"state" json:"state"`
	Bookmarks     []Bookmark   `bson:"bookmarks,omitempty" json:"bookmarks,omitempty"`
}
