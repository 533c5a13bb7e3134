package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"
)

// TokenStore registers issued tokens. A token that is not registered is
// treated as revoked even if its signature is still valid.
type TokenStore interface {
	Store(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) error
	// RevokeAll drops every access and refresh token of userID.
	RevokeAll(ctx context.Context, userID int64) error
}

func tokenKey(tokenType jwt.TokenType, userID int64, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, userID, tokenID)
}
