// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"salonpro/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth-token cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching
// (using DB from AppConfig for auth cache).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

func authCacheKey(role, subject string) string {
	return AuthCachePrefix + role + ":" + subject
}

// CacheAuthToken stores the hash of a freshly issued token so the auth
// middleware can verify it has not been revoked.
func CacheAuthToken(client *redis.Client, role, subject, tokenHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, authCacheKey(role, subject), tokenHash, TokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache auth token: %w", err)
	}
	return nil
}

// GetCachedAuthToken returns the cached token hash for a principal, or an
// empty string when none is cached.
func GetCachedAuthToken(client *redis.Client, role, subject string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	val, err := client.Get(ctx, authCacheKey(role, subject)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read auth token cache: %w", err)
	}
	return val, nil
}

// RevokeAuthToken drops the cached token hash, invalidating the session.
func RevokeAuthToken(client *redis.Client, role, subject string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, authCacheKey(role, subject)).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}
