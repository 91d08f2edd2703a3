package geocoding

import (
	"context"
	"strings"

	"anndann/models"
)

const (
	// SearchLimit caps the number of forward-search results.
	SearchLimit = 5
	// minQueryLength is the shortest query worth sending to the geocoder.
	minQueryLength = 3
	// FallbackAddress labels a position whose address could not be resolved.
	FallbackAddress = "Current Location"
)

// Geocoder performs forward and reverse lookups.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]models.Place, error)
	Reverse(ctx context.Context, lat, lon float64) (*models.Place, error)
}

// ShouldSearch reports whether query is long enough to be searched.
func ShouldSearch(query string) bool {
	return len([]rune(strings.TrimSpace(query))) >= minQueryLength
}
