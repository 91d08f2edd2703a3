package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"anndann/models"
	"anndann/services/geocoding"

	"go.uber.org/zap"
)

// PositionTimeout bounds the wait for a device position.
const PositionTimeout = 10 * time.Second

// GeolocationCode classifies a failed position request. The values follow
// the browser Geolocation API.
type GeolocationCode int

const (
	GeolocationUnknown             GeolocationCode = 0
	GeolocationPermissionDenied    GeolocationCode = 1
	GeolocationPositionUnavailable GeolocationCode = 2
	GeolocationTimeout             GeolocationCode = 3
)

// GeolocationError is a failed position request.
type GeolocationError struct {
	Code GeolocationCode
	Err  error
}

func (e *GeolocationError) Error() string {
	return e.Message()
}

func (e *GeolocationError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user for this failure.
func (e *GeolocationError) Message() string {
	switch e.Code {
	case GeolocationPermissionDenied:
		return "Location permission was denied. Please enable location services in your browser settings."
	case GeolocationPositionUnavailable:
		return "Location information is unavailable."
	case GeolocationTimeout:
		return "The request to get your location timed out."
	default:
		return "An unknown error occurred."
	}
}

// Locator reports the device's current position.
type Locator interface {
	CurrentPosition(ctx context.Context) (lat, lon float64, err error)
}

// LocationStep picks a location by search or from the device position. The
// selection stays in the step and is not written to the draft.
type LocationStep struct {
	mu        sync.Mutex
	geocoder  geocoding.Geocoder
	locator   Locator
	logger    *zap.Logger
	results   []models.Place
	selection *models.LocationSelection
	state     State
	message   string
}

func NewLocationStep(geocoder geocoding.Geocoder, locator Locator, logger *zap.Logger) *LocationStep {
	return &LocationStep{geocoder: geocoder, locator: locator, logger: logger, state: StateEditing}
}

// Search looks up query and keeps the results for Select. Short queries
// clear the results without calling the geocoder; lookup failures are
// logged and yield no results.
func (s *LocationStep) Search(ctx context.Context, query string) []models.Place {
	var results []models.Place
	if geocoding.ShouldSearch(query) {
		places, err := s.geocoder.Search(ctx, query)
		if err != nil {
			s.logger.Warn("location search failed", zap.String("query", query), zap.Error(err))
		} else {
			results = places
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
	return append([]models.Place(nil), results...)
}

// Select picks the i-th result of the last search.
func (s *LocationStep) Select(i int) (models.LocationSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.results) {
		return models.LocationSelection{}, fmt.Errorf("no search result at position %d", i)
	}
	sel, err := geocoding.SelectPlace(s.results[i])
	if err != nil {
		return models.LocationSelection{}, err
	}
	s.selection = &sel
	s.results = nil
	return sel, nil
}

// UseCurrentPosition asks the locator for a position, waiting at most
// PositionTimeout, and resolves it to an address on a best-effort basis.
// Locator failures move the step to error with a tailored message.
func (s *LocationStep) UseCurrentPosition(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = StateSubmitting
	s.message = ""
	s.selection = nil
	s.mu.Unlock()

	posCtx, cancel := context.WithTimeout(ctx, PositionTimeout)
	lat, lon, err := s.locator.CurrentPosition(posCtx)
	cancel()
	if err != nil {
		gErr := classifyGeolocation(err)
		s.mu.Lock()
		s.state = StateError
		s.message = gErr.Message()
		s.mu.Unlock()
		return gErr
	}

	sel := geocoding.ResolvePosition(ctx, s.geocoder, lat, lon, s.logger)

	s.mu.Lock()
	s.selection = &sel
	s.state = StateEditing
	s.mu.Unlock()
	return nil
}

// Acknowledge dismisses a geolocation error.
func (s *LocationStep) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateError {
		s.state = StateEditing
		s.message = ""
	}
}

// Selection returns the picked location, or nil when none is picked.
func (s *LocationStep) Selection() *models.LocationSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return nil
	}
	sel := *s.selection
	return &sel
}

func (s *LocationStep) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *LocationStep) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func classifyGeolocation(err error) *GeolocationError {
	var gErr *GeolocationError
	if errors.As(err, &gErr) {
		return gErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &GeolocationError{Code: GeolocationTimeout, Err: err}
	}
	return &GeolocationError{Code: GeolocationUnknown, Err: err}
}
