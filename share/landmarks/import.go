package landmarks

import (
	"encoding/json"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kindmap/kindmap-api/schema"
	"github.com/kindmap/kindmap-api/store"
)

// LandmarkRecord is one entry of a landmark source file. The file is a
// plain JSON array so a catalogue can be maintained by hand.
type LandmarkRecord struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Priority  int     `json:"priority"`
}

// ImportLandmarks reads a landmark catalogue file and replaces the stored
// landmark list with its contents.
func ImportLandmarks(client *mongo.Client, dbName, landmarkFile string) error {
	file, err := os.Open(landmarkFile)
	if err != nil {
		return err
	}
	defer file.Close()

	var records []LandmarkRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return err
	}

	landmarks := make([]schema.Landmark, 0, len(records))
	for _, r := range records {
		loc := schema.Location{Latitude: r.Latitude, Longitude: r.Longitude}
		if !loc.Valid() {
			return fmt.Errorf("invalid coordinates for landmark %q", r.Name)
		}
		landmarks = append(landmarks, schema.Landmark{
			Name:     r.Name,
			Location: schema.NewGeoJSON(loc),
			Priority: r.Priority,
		})
	}

	return store.NewMongoStore(client, dbName).ReplaceLandmarks(landmarks)
}
