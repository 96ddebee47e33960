// File: utils/auth_token.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const authTokenPrefix = "authToken:"

// StoreAuthToken records a hashed bearer token in Redis with a TTL, mapping
// it to the owning user. Only hashes are stored, never the raw token.
func StoreAuthToken(client *redis.Client, token, userID string, ttl time.Duration) error {
	ctx := context.Background()
	key := authTokenPrefix + HashToken(token)
	if err := client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store auth token: %w", err)
	}
	return nil
}

// AuthTokenUser returns the user ID bound to a token hash, or an empty
// string if the token is unknown or was revoked.
func AuthTokenUser(client *redis.Client, token string) (string, error) {
	ctx := context.Background()
	userID, err := client.Get(ctx, authTokenPrefix+HashToken(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up auth token: %w", err)
	}
	return userID, nil
}

// RevokeAuthToken removes a token hash so the bearer can no longer authenticate.
func RevokeAuthToken(client *redis.Client, token string) error {
	ctx := context.Background()
	if err := client.Del(ctx, authTokenPrefix+HashToken(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}
