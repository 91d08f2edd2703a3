package geocoding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"anndann/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// countingGeocoder records how often each lookup reaches it.
type countingGeocoder struct {
	mu       sync.Mutex
	searches int
	reverses int
	places   []models.Place
	place    *models.Place
	err      error
}

func (g *countingGeocoder) Search(context.Context, string) ([]models.Place, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.searches++
	if g.err != nil {
		return nil, g.err
	}
	return g.places, nil
}

func (g *countingGeocoder) Reverse(context.Context, float64, float64) (*models.Place, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reverses++
	if g.err != nil {
		return nil, g.err
	}
	return g.place, nil
}

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCachedGeocoder_ReadErrorFallsThrough(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	next := &countingGeocoder{
		places: []models.Place{{DisplayName: "MG Road, Bengaluru", Lat: "12.97", Lon: "77.61"}},
		place:  &models.Place{DisplayName: "Cubbon Park, Bengaluru"},
	}
	g := NewCachedGeocoder(next, unreachableRedis(t), time.Hour, zap.New(core))
	ctx := context.Background()

	places, err := g.Search(ctx, "MG Road")
	require.NoError(t, err)
	assert.Equal(t, next.places, places)

	place, err := g.Reverse(ctx, 12.97, 77.59)
	require.NoError(t, err)
	assert.Equal(t, "Cubbon Park, Bengaluru", place.DisplayName)

	assert.Equal(t, 1, next.searches)
	assert.Equal(t, 1, next.reverses)
	assert.Equal(t, 2, logs.FilterMessage("geocode cache read failed").Len())
	assert.Equal(t, 2, logs.FilterMessage("geocode cache write failed").Len())
}

func TestCachedGeocoder_LookupErrorReturned(t *testing.T) {
	lookupErr := errors.New("upstream 503")
	next := &countingGeocoder{err: lookupErr}
	g := NewCachedGeocoder(next, unreachableRedis(t), time.Hour, zaptest.NewLogger(t))

	_, err := g.Search(context.Background(), "MG Road")
	assert.ErrorIs(t, err, lookupErr)
	_, err = g.Reverse(context.Background(), 12.97, 77.59)
	assert.ErrorIs(t, err, lookupErr)
}
