package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacy-fulfillment/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = auth.ErrNotConfigured
	ErrTokenEmpty    = errors.New("token is empty")
	ErrTokenInvalid  = errors.New("token invalid or expired")
)

const issuer = "pharmacy-fulfillment"

// tokenClaims es el payload del JWT.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret string
	TTL    time.Duration
}

// Authority implementa auth.AuthVerifier y auth.TokenIssuer con HS256.
type Authority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(cfg Config) *Authority {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authority{
		secret: []byte(strings.TrimSpace(cfg.Secret)),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (a *Authority) Issue(ctx context.Context, c auth.Claims) (auth.Token, error) {
	if a == nil || len(a.secret) == 0 {
		return auth.Token{}, ErrNotConfigured
	}
	if strings.TrimSpace(c.UserID) == "" {
		return auth.Token{}, errors.New("jwt issue: user id required")
	}

	now := a.now()
	exp := now.Add(a.ttl)

	claims := tokenClaims{
		Email: c.Email,
		Role:  c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return auth.Token{}, fmt.Errorf("jwt sign: %w", err)
	}
	return auth.Token{Value: signed, ExpiresAt: exp}, nil
}

func (a *Authority) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if a == nil || len(a.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, errors.New("jwt claims missing subject")
	}

	return auth.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
