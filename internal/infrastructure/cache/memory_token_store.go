package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"

	gocache "github.com/patrickmn/go-cache"
)

type memoryTokenStore struct {
	cache *gocache.Cache
}

// NewMemoryTokenStore keeps tokens in process memory. Used with
// APP_STORAGE=memory and in tests.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{cache: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

func (s *memoryTokenStore) Store(_ context.Context, tokenType jwt.TokenType, userID int64, tokenID string, ttl time.Duration) error {
	s.cache.Set(tokenKey(tokenType, userID, tokenID), struct{}{}, ttl)
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, tokenType jwt.TokenType, userID int64, tokenID string) (bool, error) {
	_, found := s.cache.Get(tokenKey(tokenType, userID, tokenID))
	return found, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenType jwt.TokenType, userID int64, tokenID string) error {
	s.cache.Delete(tokenKey(tokenType, userID, tokenID))
	return nil
}

func (s *memoryTokenStore) RevokeAll(_ context.Context, userID int64) error {
	suffix := fmt.Sprintf("_token:%d:", userID)
	for key := range s.cache.Items() {
		if strings.Contains(key, suffix) {
			s.cache.Delete(key)
		}
	}
	return nil
}
