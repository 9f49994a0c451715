package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PostCollection = "post"
)

// PostType enumerates the annotation kinds a user can drop on the map.
type PostType string

const (
	PostTypeNote    PostType = "note"
	PostTypeSticker PostType = "sticker"
	PostTypePhoto   PostType = "photo"
	PostTypeDoodle  PostType = "doodle"
)

// Valid reports whether the type is one of the known annotation kinds.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeNote, PostTypeSticker, PostTypePhoto, PostTypeDoodle:
		return true
	}
	return false
}

// HasHeat reports whether posts of this type participate in heat coloring.
// Stickers and doodles are decoration and never carry a heat level.
func (t PostType) HasHeat() bool {
	return t == PostTypeNote || t == PostTypePhoto
}

// Post is a user-created map annotation. The heat level is deliberately not
// part of this struct: it is a per-pass annotation computed by the feed
// pipeline and lives only on feed output types.
type Post struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Type        PostType           `bson:"type" json:"type"`
	User        string             `bson:"user" json:"user"`
	IsAnonymous bool               `bson:"is_anonymous" json:"is_anonymous"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	Sticker     string             `bson:"sticker,omitempty" json:"sticker,omitempty"`
	PhotoData   string             `bson:"photo_data,omitempty" json:"photo_data,omitempty"`
	DoodleData  string             `bson:"doodle_data,omitempty" json:"doodle_data,omitempty"`
	Color       string             `bson:"color" json:"color"`
	Location    *GeoJSON           `bson:"location" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt   time.Time          `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	ClientID    string             `bson:"client_id" json:"client_id"`
}

// Coordinates returns the post location as a lat/lng pair, or nil when the
// post has no stored location.
func (p Post) Coordinates() *Location {
	return p.Location.ToLocation()
}

// IsExpired reports whether the post lifetime has passed at the given
// instant. A post without an expiry never expires.
func (p Post) IsExpired(now time.Time) bool {
	if p.ExpiresAt.IsZero() {
		return false
	}
	return now.After(p.ExpiresAt)
}

// PostDetail is the client-facing representation of a post, with the
// location flattened to lat/lng.
type PostDetail struct {
	ID          string    `json:"id"`
	Type        PostType  `json:"type"`
	User        string    `json:"user"`
	IsAnonymous bool      `json:"is_anonymous"`
	Message     string    `json:"message,omitempty"`
	Sticker     string    `json:"sticker,omitempty"`
	PhotoData   string    `json:"photo_data,omitempty"`
	DoodleData  string    `json:"doodle_data,omitempty"`
	Color       string    `json:"color"`
	Location    *Location `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
	ClientID    string    `json:"client_id"`
}

// Detail converts a stored post to its client-facing representation.
func (p Post) Detail() PostDetail {
	return PostDetail{
		ID:          p.ID.Hex(),
		Type:        p.Type,
		User:        p.User,
		IsAnonymous: p.IsAnonymous,
		Message:     p.Message,
		Sticker:     p.Sticker,
		PhotoData:   p.PhotoData,
		DoodleData:  p.DoodleData,
		Color:       p.Color,
		Location:    p.Coordinates(),
		CreatedAt:   p.CreatedAt,
		ExpiresAt:   p.ExpiresAt,
		ClientID:    p.ClientID,
	}
}
