package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/gominatim"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/kindmap/kindmap-api/schema"
)

var (
	ErrNoLabelFound           = fmt.Errorf("no label found for location")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// LabelResolver - interface for resolving a human-readable label for a map
// location. Labels decorate posts in the client; resolution failures are
// always recoverable and the caller falls back to an empty label.
type LabelResolver interface {
	ResolveLabel(schema.Location) (string, error)
}

var defaultResolver LabelResolver

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// LandmarkLabelResolver labels a location with the nearest curated landmark.
type LandmarkLabelResolver struct {
	client   *mongo.Client
	database string
}

func NewLandmarkLabelResolver(client *mongo.Client, database string) *LandmarkLabelResolver {
	return &LandmarkLabelResolver{
		client:   client,
		database: database,
	}
}

func (r *LandmarkLabelResolver) ResolveLabel(loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// $nearSphere prefilter keeps the candidate list small; the priority
	// rule is applied in memory afterwards.
	cursor, err := r.client.Database(r.database).Collection(schema.LandmarkCollection).Find(ctx, bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{loc.Longitude, loc.Latitude},
				},
				"$maxDistance": PrioritySearchRadiusMeters,
			},
		},
	}, options.Find().SetLimit(32))
	if err != nil {
		return "", err
	}

	var landmarks []schema.Landmark
	if err := cursor.All(ctx, &landmarks); err != nil {
		return "", err
	}

	best := FindNearestLandmark(loc, landmarks)
	if best == nil {
		return "", ErrNoLabelFound
	}

	return best.Name, nil
}

// GeocodingLabelResolver labels a location through the google maps reverse
// geocoder.
type GeocodingLabelResolver struct {
	client *maps.Client
}

func NewGeocodingLabelResolver(client *maps.Client) *GeocodingLabelResolver {
	return &GeocodingLabelResolver{
		client: client,
	}
}

func (g *GeocodingLabelResolver) ResolveLabel(loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if nil != err {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrNoLabelFound
	}

	return geos[0].FormattedAddress, nil
}

// NominatimLabelResolver labels a location through a Nominatim server. It is
// the fallback when no google maps API key is configured.
type NominatimLabelResolver struct{}

func NewNominatimLabelResolver(server string) *NominatimLabelResolver {
	gominatim.SetServer(server)
	return &NominatimLabelResolver{}
}

func (n *NominatimLabelResolver) ResolveLabel(loc schema.Location) (string, error) {
	q := gominatim.ReverseQuery{
		Lat: strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		Lon: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
	}

	result, err := q.Get()
	if err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", ErrNoLabelFound
	}

	return result.DisplayName, nil
}

type MultipleLabelResolver struct {
	resolvers []LabelResolver
}

func NewMultipleLabelResolver(resolvers ...LabelResolver) *MultipleLabelResolver {
	return &MultipleLabelResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleLabelResolver) ResolveLabel(loc schema.Location) (string, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		label, err := resolver.ResolveLabel(loc)
		if err != nil {
			errors = append(errors, err)
		} else {
			return label, nil
		}
	}

	return "", NewMultipleResolverErrors(errors)
}

func SetLabelResolver(resolver LabelResolver) {
	defaultResolver = resolver
}

func LabelFor(loc schema.Location) (string, error) {
	if defaultResolver == nil {
		return "", ErrResolverNotInitialized
	}

	return defaultResolver.ResolveLabel(loc)
}
