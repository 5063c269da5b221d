// File: utils/auth_session.go
package utils

import (
	"context"
	"time"
)

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// CacheAuthToken maps a session-token hash to its tenant ID so middleware can
// skip the database on repeat requests.
func CacheAuthToken(tokenHash, tenantID string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = client.Set(ctx, AuthCachePrefix+tokenHash, tenantID, AuthCacheTTL).Err()
}

// GetCachedAuthTenant returns the tenant ID cached for a token hash, or ""
// on a miss.
func GetCachedAuthTenant(tokenHash string) string {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	val, err := client.Get(ctx, AuthCachePrefix+tokenHash).Result()
	if err != nil {
		// redis.Nil (miss) and transport errors both fall back to the DB path.
		return ""
	}
	return val
}

// DropAuthToken evicts a cached session token, e.g. on sign-out.
func DropAuthToken(tokenHash string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = client.Del(ctx, AuthCachePrefix+tokenHash).Err()
}
