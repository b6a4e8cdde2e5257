package auth

import (
	"context"
	"errors"
)

// ErrNotConfigured lo devuelve un emisor/verificador sin secreto o backend configurado.
var ErrNotConfigured = errors.New("auth not configured")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens para un actor autenticado.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (Token, error)
}
