package geocoding

import (
	"fmt"
	"strconv"
	"strings"
)

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return v, nil
}

// ParseLatLon parses and range-checks a latitude/longitude pair.
func ParseLatLon(latStr, lonStr string) (float64, float64, error) {
	lat, err := parseCoordinate(latStr)
	if err != nil {
		return 0, 0, err
	}
	lon, err := parseCoordinate(lonStr)
	if err != nil {
		return 0, 0, err
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude %v out of range", lon)
	}
	return lat, lon, nil
}
