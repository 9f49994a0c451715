package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kindmap/kindmap-api/geo"
	"github.com/kindmap/kindmap-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// updateGeoPositionMiddleware is a middleware to store the device position
// for every api request from users. It feeds the pipeline's reference-point
// fallback.
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	accountNumber := c.GetString("requester")

	if gp != "" && accountNumber != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			if err := s.mongoStore.UpdateProfileLastLocation(accountNumber, schema.Location{
				Latitude:  lat,
				Longitude: long,
			}); err != nil {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}

// geoLabel resolves a human-readable label for a location through the
// resolver chain. Resolution failure is not an error to the client; labels
// are a decoration and degrade to empty.
func (s *Server) geoLabel(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	label, err := geo.LabelFor(schema.Location{Latitude: lat, Longitude: lng})
	if err != nil {
		log.WithError(err).Warn("resolve location label")
		label = ""
	}

	c.JSON(http.StatusOK, gin.H{"label": label})
}
