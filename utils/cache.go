package utils

import (
	"context"
	"log"
	"time"

	"autodetail/config"

	"github.com/go-redis/redis/v8"
)

const AuthCachePrefix = "auth:token:"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// ContextCacheClient backs the assistant's conversation context store.
	ContextCacheClient *redis.Client
)

// InitRedis initializes every Redis client the server depends on.
func InitRedis() {
	InitCache()
	InitAuthCache()
	InitContextCache()
}

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func pingOrDie(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	pingOrDie(CacheClient, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	pingOrDie(AuthCacheClient, "Auth Cache")
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitContextCache initializes the Redis client for assistant context storage.
func InitContextCache() {
	ContextCacheClient = newRedisClient(config.AppConfig.RedisContextDB)
	pingOrDie(ContextCacheClient, "Assistant Context")
}

// GetContextCacheClient returns the Redis client for assistant context storage.
func GetContextCacheClient() *redis.Client {
	if ContextCacheClient == nil {
		InitContextCache()
	}
	return ContextCacheClient
}
