package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"anndann/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const geocodeCachePrefix = "geocode:"

// CachedGeocoder caches successful lookups in Redis. Cache failures are
// logged and fall through to the wrapped geocoder.
type CachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, client: client, ttl: ttl, logger: logger}
}

func (g *CachedGeocoder) Search(ctx context.Context, query string) ([]models.Place, error) {
	key := geocodeCachePrefix + "search:" + strings.ToLower(strings.TrimSpace(query))

	var places []models.Place
	if g.load(ctx, key, &places) {
		return places, nil
	}
	places, err := g.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	g.store(ctx, key, places)
	return places, nil
}

func (g *CachedGeocoder) Reverse(ctx context.Context, lat, lon float64) (*models.Place, error) {
	key := fmt.Sprintf("%sreverse:%.6f,%.6f", geocodeCachePrefix, lat, lon)

	var place models.Place
	if g.load(ctx, key, &place) {
		return &place, nil
	}
	p, err := g.next.Reverse(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	g.store(ctx, key, p)
	return p, nil
}

func (g *CachedGeocoder) load(ctx context.Context, key string, out interface{}) bool {
	data, err := g.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		g.logger.Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		g.logger.Warn("geocode cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (g *CachedGeocoder) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := g.client.Set(ctx, key, data, g.ttl).Err(); err != nil {
		g.logger.Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
}
