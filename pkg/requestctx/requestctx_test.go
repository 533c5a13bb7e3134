package requestctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{
		UserID: 9, Email: "a@x.com", RoleID: 1, IsStaff: true, TokenID: "tok",
	})

	userID, ok := UserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(9), userID)
	assert.True(t, IsStaff(ctx))
	tokenID, _ := TokenID(ctx)
	assert.Equal(t, "tok", tokenID)
}

func TestAnonymousContext(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)
	assert.False(t, IsStaff(context.Background()))
}
