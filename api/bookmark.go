package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
	"github.com/kindmap/kindmap-api/store"
)

// addBookmark pins a post to the caller's profile. The stored snapshot is
// denormalized from the live record, so the bookmark keeps rendering after
// the post expires.
func (s *Server) addBookmark(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		PostID string `json:"post_id"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	postID, err := primitive.ObjectIDFromHex(params.PostID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid post ID"))
		return
	}

	// Prefer the cached live record; fall back to the store for posts that
	// predate this server instance.
	post, cached := s.cache.Get(postID)
	if !cached {
		stored, err := s.mongoStore.GetPost(postID)
		if err != nil {
			if err == store.ErrPostNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorUnknownPost)
				return
			}
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		post = *stored
	}

	bookmark := schema.SnapshotOf(post, time.Now().UTC())
	if err := s.mongoStore.AddBookmark(account.AccountNumber, bookmark); err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": bookmark})
}

// removeBookmark unpins a post. Removing an unknown bookmark succeeds.
func (s *Server) removeBookmark(c *gin.Context) {
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

	if err := s.mongoStore.RemoveBookmark(account.AccountNumber, postID); err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) listBookmarks(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	bookmarks, err := s.mongoStore.ListBookmarks(account.AccountNumber)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
