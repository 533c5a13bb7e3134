// Package requestctx carries the authenticated principal through a request
// context.
package requestctx

import "context"

type contextKey string

const (
	userIDKey  contextKey = "user_id"
	emailKey   contextKey = "user_email"
	roleIDKey  contextKey = "role_id"
	isStaffKey contextKey = "is_staff"
	tokenIDKey contextKey = "token_id"
)

// Principal is the caller identified by an access token.
type Principal struct {
	UserID  int64
	Email   string
	RoleID  int64
	IsStaff bool
	TokenID string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, userIDKey, p.UserID)
	ctx = context.WithValue(ctx, emailKey, p.Email)
	ctx = context.WithValue(ctx, roleIDKey, p.RoleID)
	ctx = context.WithValue(ctx, isStaffKey, p.IsStaff)
	return context.WithValue(ctx, tokenIDKey, p.TokenID)
}

// UserID extracts the authenticated user id.
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func Email(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

func RoleID(ctx context.Context) (int64, bool) {
	roleID, ok := ctx.Value(roleIDKey).(int64)
	return roleID, ok
}

func IsStaff(ctx context.Context) bool {
	isStaff, _ := ctx.Value(isStaffKey).(bool)
	return isStaff
}

func TokenID(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(tokenIDKey).(string)
	return tokenID, ok
}
