package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"anndann/models"
)

// ErrNoAddress is returned by Reverse when the geocoder has no address for
// the position.
var ErrNoAddress = errors.New("geocoder returned no address")

// NominatimClient talks to a Nominatim-compatible HTTP API.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimClient(baseURL, userAgent string) *NominatimClient {
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns at most SearchLimit places ranked by the geocoder.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]models.Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(SearchLimit))

	var places []models.Place
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if len(places) > SearchLimit {
		places = places[:SearchLimit]
	}
	return places, nil
}

// Reverse resolves a position to the nearest address.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*models.Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	var place models.Place
	if err := c.get(ctx, "/reverse", params, &place); err != nil {
		return nil, fmt.Errorf("reverse %f,%f: %w", lat, lon, err)
	}
	if place.DisplayName == "" {
		return nil, ErrNoAddress
	}
	return &place, nil
}

func (c *NominatimClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode geocoder response: %w", err)
	}
	return nil
}
