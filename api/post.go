package api

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/consts"
	"github.com/kindmap/kindmap-api/schema"
	"github.com/kindmap/kindmap-api/store"
	"github.com/kindmap/kindmap-api/utils"
)

type userPost struct {
	Type         schema.PostType  `json:"type"`
	User         string           `json:"user"`
	Message      string           `json:"message"`
	Sticker      string           `json:"sticker"`
	PhotoData    string           `json:"photo_data"`
	DoodleData   string           `json:"doodle_data"`
	Color        string           `json:"color"`
	Location     *schema.Location `json:"location"`
	DurationDays int              `json:"duration_days"`
}

func defaultMapCenter() schema.Location {
	center := schema.Location{
		Latitude:  consts.DefaultMapCenterLat,
		Longitude: consts.DefaultMapCenterLng,
	}
	if viper.IsSet("map.center_latitude") && viper.IsSet("map.center_longitude") {
		center.Latitude = viper.GetFloat64("map.center_latitude")
		center.Longitude = viper.GetFloat64("map.center_longitude")
	}
	return center
}

// addPost saves a new map annotation and fans it out to feed listeners.
func (s *Server) addPost(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body userPost
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !body.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPostType)
		return
	}

	if body.Location == nil || !body.Location.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired)
		return
	}

	switch body.Type {
	case schema.PostTypeNote:
		if body.Message == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorAttachmentRequired)
			return
		}
	case schema.PostTypeSticker:
		if !consts.ValidSticker(body.Sticker) {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownSticker)
			return
		}
	case schema.PostTypePhoto:
		if body.PhotoData == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorAttachmentRequired)
			return
		}
	case schema.PostTypeDoodle:
		if body.DoodleData == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorAttachmentRequired)
			return
		}
	}

	if blocked := s.wordlist.FirstBlockedWord(body.Message); blocked != "" {
		resp := errorBlockedWord
		localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
		if message, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "blocked_word",
			TemplateData: map[string]interface{}{"Word": blocked},
		}); err == nil {
			resp.Message = message
		}
		abortWithEncoding(c, http.StatusBadRequest, resp)
		return
	}

	duration := body.DurationDays
	if duration == 0 {
		duration = consts.MaxPostDurationDays
	}
	if duration < consts.MinPostDurationDays || duration > consts.MaxPostDurationDays {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("duration_days out of range: %d", duration))
		return
	}

	user := body.User
	isAnonymous := user == ""
	if isAnonymous {
		user = fmt.Sprintf("anonymous%d", rand.Intn(1000))
	}

	color := body.Color
	if color == "" {
		color = consts.DefaultNoteColor
	}

	post, err := s.mongoStore.AddPost(schema.Post{
		Type:        body.Type,
		User:        user,
		IsAnonymous: isAnonymous,
		Message:     body.Message,
		Sticker:     body.Sticker,
		PhotoData:   body.PhotoData,
		DoodleData:  body.DoodleData,
		Color:       color,
		Location:    schema.NewGeoJSON(*body.Location),
		ClientID:    account.AccountNumber,
	}, time.Duration(duration)*consts.PostDay)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.BroadcastPost(*post)

	c.JSON(http.StatusOK, gin.H{"result": post.Detail()})
}

// listVisiblePosts runs one visibility/heat pipeline pass at the caller's
// reference point and returns what the client should draw.
func (s *Server) listVisiblePosts(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	reference := referenceFromQuery(c)
	visible := s.controller.Run(account.AccountNumber, reference, time.Now().UTC())

	c.JSON(http.StatusOK, gin.H{"posts": visible})
}

// referenceFromQuery parses optional lat/lng query parameters. A missing or
// unparsable pair means no device location: the pipeline falls back to the
// configured map center.
func referenceFromQuery(c *gin.Context) *schema.Location {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}

	loc := schema.Location{Latitude: lat, Longitude: lng}
	if !loc.Valid() {
		return nil
	}
	return &loc
}

// deletePost removes the caller's own post and notifies listeners. The
// store-side removal goes through the background queue.
func (s *Server) deletePost(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("postID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid post ID"))
		return
	}

	post, err := s.mongoStore.GetPost(postID)
	if err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPost)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if post.ClientID != account.AccountNumber {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownPost)
		return
	}

	if err := s.RequestDeletion(postID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.cache.Remove(postID)
	s.hub.BroadcastDelete(postID.Hex())

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// updatePostPosition handles drag-to-reposition. Only stickers are
// draggable, and only by the client that placed them.
func (s *Server) updatePostPosition(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("postID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid post ID"))
		return
	}

	var body struct {
		Location *schema.Location `json:"location"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.Location == nil || !body.Location.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired)
		return
	}

	existing, err := s.mongoStore.GetPost(postID)
	if err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPost)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if existing.Type != schema.PostTypeSticker {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("post type %s is not draggable", existing.Type))
		return
	}

	post, err := s.mongoStore.UpdatePostPosition(postID, account.AccountNumber, *body.Location)
	if err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPost)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.BroadcastPost(*post)

	c.JSON(http.StatusOK, gin.H{"result": post.Detail()})
}

// RequestDeletion enqueues the retryable background task that removes a
// post upstream. It satisfies the feed pipeline's Deleter contract.
func (s *Server) RequestDeletion(postID primitive.ObjectID) error {
	_, err := s.background.SendTask(&tasks.Signature{
		Name: "delete_post",
		Args: []tasks.Arg{
			{Type: "string", Value: postID.Hex()},
		},
		RetryCount: 3,
	})
	return err
}
