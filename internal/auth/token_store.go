package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"obtconnect/internal/cache"
	"obtconnect/internal/scope"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, identity scope.Identity, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (scope.Identity, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore handles storage and retrieval of refresh tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores the identity behind a refresh token with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, identity scope.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves the identity stored for a refresh token.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (scope.Identity, error) {
	var identity scope.Identity
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return identity, fmt.Errorf("refresh token not found")
	}
	if err := json.Unmarshal(data, &identity); err != nil {
		return identity, fmt.Errorf("unmarshal identity: %w", err)
	}
	return identity, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
