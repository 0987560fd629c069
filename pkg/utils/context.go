package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "token"
)

// Identity is the caller decoded from a session token.
type Identity struct {
	UserID     uuid.UUID
	Email      string
	UmkmID     uuid.UUID
	Username   string
	IsVerified bool
}

func SetIdentityContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
