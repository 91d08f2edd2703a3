// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"anndann/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client, used for geocoding results.
	CacheClient *redis.Client
	// DraftCacheClient is the dedicated client for registration drafts.
	DraftCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitDraftCache initializes the Redis client holding registration drafts.
func InitDraftCache() {
	DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB, "Drafts")
}

// GetDraftCacheClient returns the Redis client for registration drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}

// RedisClients returns every client opened so far, for health checks and
// shutdown.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{CacheClient, DraftCacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
