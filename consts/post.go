package consts

import "time"

const (
	// DefaultNoteColor is the sticky-note background used when the client
	// does not pick one.
	DefaultNoteColor = "#C1EDB9"

	// MinPostDurationDays / MaxPostDurationDays bound the lifetime a client
	// may request for a post.
	MinPostDurationDays = 1
	MaxPostDurationDays = 7

	// PostDay is the unit a duration-days request is multiplied by.
	PostDay = 24 * time.Hour
)

// DefaultMapCenter* is the fallback reference point for visibility checks
// when a client reports no device location (downtown Vancouver, the app's
// launch city).
const (
	DefaultMapCenterLat = 49.2827
	DefaultMapCenterLng = -123.1207
)

// StickerAssets maps the sticker keys clients may post to their asset file
// names. Unknown keys are rejected at save time.
var StickerAssets = map[string]string{
	"heart":     "heart.png",
	"star":      "star.png",
	"sun":       "sun.png",
	"rainbow":   "rainbow.png",
	"flower":    "flower.png",
	"smile":     "smile.png",
	"sparkle":   "sparkle.png",
	"butterfly": "butterfly.png",
}

// ValidSticker reports whether the sticker key is a known asset.
func ValidSticker(key string) bool {
	_, ok := StickerAssets[key]
	return ok
}
