package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kindmap/kindmap-api/geo"
	"github.com/kindmap/kindmap-api/schema"
)

// nearestLandmark returns the best label landmark for a point. The store
// narrows candidates with a geo query; the priority rule picks the winner.
func (s *Server) nearestLandmark(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	point := schema.Location{Latitude: lat, Longitude: lng}
	if !point.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	landmarks, err := s.mongoStore.NearestLandmarks(geo.PrioritySearchRadiusMeters, point)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	best := geo.FindNearestLandmark(point, landmarks)
	if best == nil {
		abortWithEncoding(c, http.StatusNotFound, errorNoLandmarks)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"landmark": gin.H{
			"name":     best.Name,
			"location": best.Coordinates(),
			"priority": best.Priority,
		},
	})
}
