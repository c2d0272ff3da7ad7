// Package core provides the ports and shared contracts for the track-ui service.
package core

import (
	"context"
	"fmt"
	"time"
)

// CacheRepository defines the interface for caching operations.
// The core defines the interface and the data layer provides the
// Redis-backed implementation.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// DeleteByPrefix removes every key with the given prefix and returns
	// the number of keys removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)

	// Exists checks if a key exists in the cache.
	Exists(ctx context.Context, key string) (bool, error)

	// SetIfNotExists atomically sets a key only if it doesn't already exist.
	// Returns true if the key was set, false if it already existed.
	SetIfNotExists(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

// Cache keys are namespaced per user so invalidation after a mutation
// only evicts that user's entries.

// ProcessListCacheKey is the cache key for a user's process list.
func ProcessListCacheKey(userID string) string {
	return fmt.Sprintf("user:%s:processes", userID)
}

// ProcessDetailCacheKey is the cache key for one process with its stages.
func ProcessDetailCacheKey(userID string, processID int64) string {
	return fmt.Sprintf("user:%s:process:%d", userID, processID)
}

// UserCachePrefix covers every cached read belonging to a user.
func UserCachePrefix(userID string) string {
	return fmt.Sprintf("user:%s:", userID)
}

// ShareCacheKey is the cache key for a publicly shared process.
func ShareCacheKey(shareID string) string {
	return "share:" + shareID
}

// ProfileCacheKey is the cache key for a public profile view.
func ProfileCacheKey(username string) string {
	return "profile:" + username
}
