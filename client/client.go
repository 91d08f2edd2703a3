// Package client is a Go client for the AnnDann HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"anndann/models"
)

// ErrNetwork wraps failures to reach the API at all, as opposed to the API
// answering with an error.
var ErrNetwork = errors.New("network error")

// APIError is an error response from the API.
type APIError struct {
	Status  int
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Client calls the AnnDann API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a client for the API rooted at baseURL. No request timeout is
// set; callers bound requests through their context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitRegistration posts a registration and returns the stored record.
func (c *Client) SubmitRegistration(ctx context.Context, reg models.VolunteerRegistration) (*models.VolunteerRecord, error) {
	var out struct {
		Status    string                 `json:"status"`
		Volunteer models.VolunteerRecord `json:"volunteer"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/volunteers", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out.Volunteer, nil
}

// Search forwards a free-text location query through the API.
func (c *Client) Search(ctx context.Context, query string) ([]models.Place, error) {
	var out struct {
		Results []models.Place `json:"results"`
	}
	path := "/api/geocode/search?" + url.Values{"q": {query}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Reverse resolves a position through the API. The API always answers with
// an address, falling back to a placeholder.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*models.Place, error) {
	var out struct {
		Result models.Place `json:"result"`
	}
	path := "/api/geocode/reverse?" + url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil || eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Kind: eb.Kind, Message: eb.Error}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
