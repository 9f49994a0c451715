package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminExpirePosts is an internal only api to trigger the task that sweeps
// expired, unbookmarked posts out of the store
func (s *Server) adminExpirePosts(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_posts",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
