package geocoding

import (
	"context"

	"anndann/models"

	"go.uber.org/zap"
)

// ResolvePosition reverse-geocodes a position on a best-effort basis. When
// the lookup fails the coordinates are kept and the address falls back to
// FallbackAddress.
func ResolvePosition(ctx context.Context, g Geocoder, lat, lon float64, logger *zap.Logger) models.LocationSelection {
	sel := models.LocationSelection{Address: FallbackAddress, Latitude: lat, Longitude: lon}

	place, err := g.Reverse(ctx, lat, lon)
	if err != nil {
		logger.Warn("reverse geocoding failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		return sel
	}
	if place.DisplayName != "" {
		sel.Address = place.DisplayName
	}
	return sel
}

// SelectPlace turns a search result into a selection. Unparseable
// coordinates are reported as an error.
func SelectPlace(p models.Place) (models.LocationSelection, error) {
	lat, err := parseCoordinate(p.Lat)
	if err != nil {
		return models.LocationSelection{}, err
	}
	lon, err := parseCoordinate(p.Lon)
	if err != nil {
		return models.LocationSelection{}, err
	}
	return models.LocationSelection{Address: p.DisplayName, Latitude: lat, Longitude: lon}, nil
}
